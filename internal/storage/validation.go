package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrInvalidRecord = errors.New("invalid record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecord checks what the records table needs from a record.
func validateRecord(r model.OutputRecord) error {
	if strings.TrimSpace(r.FileName) == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.DocumentID()) == "" {
		return fmt.Errorf("%w: document id is required for %s", ErrInvalidRecord, r.FileName)
	}
	return nil
}
