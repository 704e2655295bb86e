//go:build !ocr

package acquire

import "github.com/MuhammadZahidRWTH/docextract/internal/common"

// NewRecognizer is unavailable without the ocr build tag; the tesseract
// command line is used instead.
func NewRecognizer(_ string) (Recognizer, error) {
	return nil, common.ErrOCRUnavailable
}
