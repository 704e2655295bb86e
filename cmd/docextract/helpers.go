package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/MuhammadZahidRWTH/docextract/internal/acquire"
	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/config"
	"github.com/MuhammadZahidRWTH/docextract/internal/langdetect"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/pipeline"
	"github.com/MuhammadZahidRWTH/docextract/internal/schema"
	"github.com/MuhammadZahidRWTH/docextract/internal/storage"
)

// initStorage opens the result database and brings its schema up to date.
func initStorage(ctx context.Context, c config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(c.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadRegistry loads the configured field definitions, or the built-in ones.
func loadRegistry(c config.Config) (*schema.Registry, error) {
	registry, err := schema.Load(c.Schema.Path)
	if err != nil {
		return nil, common.NewUserError("Could not load field definitions", err)
	}
	return registry, nil
}

// newAcquirer builds the text acquirer for the configured OCR engine.
func newAcquirer(c config.Config) (*acquire.Acquirer, error) {
	opts := []acquire.Option{acquire.WithLogger(slog.Default())}
	if c.OCR.Engine == config.OCREngineGosseract {
		rec, err := acquire.NewRecognizer(c.OCR.Langs)
		if err != nil {
			if errors.Is(err, common.ErrOCRUnavailable) {
				return nil, common.NewUserError("The gosseract engine needs a build with -tags ocr", err)
			}
			return nil, err
		}
		opts = append(opts, acquire.WithRecognizer(rec))
	}

	return acquire.New(acquire.Config{
		Pdftotext: c.OCR.Pdftotext,
		Pdftoppm:  c.OCR.Pdftoppm,
		Tesseract: c.OCR.Tesseract,
		Langs:     c.OCR.Langs,
		DPI:       c.OCR.DPI,
		MaxPages:  c.OCR.MaxPages,
	}, opts...), nil
}

// newDetector returns the language detector, or a fixed language when forced.
func newDetector(c config.Config) (pipeline.Detector, error) {
	if c.Language.Force != "" {
		lang := model.ParseLanguage(c.Language.Force)
		if !lang.IsSupported() {
			return nil, common.NewUserError(
				fmt.Sprintf("Unsupported language %q (use en, de, fr, es or it)", c.Language.Force),
				common.ErrInvalidConfig)
		}
		return langdetect.Fixed(lang), nil
	}
	if c.Language.Restrict {
		return langdetect.NewRestricted(), nil
	}
	return langdetect.New(), nil
}

// newProcessor wires acquisition, detection and the extraction pipeline.
func newProcessor(c config.Config) (*pipeline.Processor, error) {
	registry, err := loadRegistry(c)
	if err != nil {
		return nil, err
	}
	acquirer, err := newAcquirer(c)
	if err != nil {
		return nil, err
	}
	detector, err := newDetector(c)
	if err != nil {
		return nil, err
	}

	return pipeline.NewProcessor(
		pipeline.New(pipeline.WithRegistry(registry)),
		acquirer,
		detector,
		pipeline.ProcessorOptions{
			Retry:   c.RetryOptions(),
			Timeout: c.Batch.Timeout,
		},
	), nil
}

// collectFiles expands directories into the supported files below them.
// Files named explicitly are kept whatever their extension.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, common.NewUserError("Input not found: "+arg, common.ErrNotFound)
			}
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && acquire.Supported(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}
