//go:build ocr

package acquire

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// NewRecognizer returns an in-process Tesseract recognizer for the given
// languages (e.g. "deu+eng").
func NewRecognizer(langs string) (Recognizer, error) {
	return &tesseractRecognizer{langs: strings.Split(langs, "+")}, nil
}

type tesseractRecognizer struct {
	langs []string
}

func (r *tesseractRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.langs...); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}
