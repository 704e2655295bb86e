package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Acquirer reads the text of a file.
type Acquirer interface {
	Acquire(ctx context.Context, path string) (string, error)
}

// Detector detects the language of a text.
type Detector interface {
	Detect(text string) model.Language
}

// ProcessorOptions tunes acquisition.
type ProcessorOptions struct {
	Retry   common.RetryOptions
	Timeout time.Duration // per attempt; zero means none
}

// Processor processes files: acquisition, language detection and the pipeline.
type Processor struct {
	pipeline *Pipeline
	acquirer Acquirer
	detector Detector
	opts     ProcessorOptions
}

// NewProcessor creates a file processor.
func NewProcessor(p *Pipeline, a Acquirer, d Detector, opts ProcessorOptions) *Processor {
	return &Processor{
		pipeline: p,
		acquirer: a,
		detector: d,
		opts:     opts,
	}
}

// Text acquires the text of path, retrying transient failures. Unsupported files fail
// without retry.
func (pr *Processor) Text(ctx context.Context, path string) (string, error) {
	var text string
	err := common.WithRetry(ctx, func() error {
		attemptCtx := ctx
		if pr.opts.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, pr.opts.Timeout)
			defer cancel()
		}

		var err error
		text, err = pr.acquirer.Acquire(attemptCtx, path)
		if errors.Is(err, common.ErrUnsupportedFormat) || errors.Is(err, common.ErrNotFound) {
			return common.Permanent(err)
		}
		return err
	}, pr.opts.Retry)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return text, nil
}

// ProcessFile produces the record for one file. Empty text is not an error; the record
// then carries little more than its id and language.
func (pr *Processor) ProcessFile(ctx context.Context, path string) (model.OutputRecord, error) {
	text, err := pr.Text(ctx, path)
	if err != nil {
		return model.OutputRecord{}, err
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("No text extracted, check the OCR fallback", "file", path)
	}

	return pr.pipeline.Process(model.RawDocument{
		FileName: filepath.Base(path),
		Text:     text,
		Language: pr.detector.Detect(text),
	}), nil
}
