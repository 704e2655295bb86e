package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MuhammadZahidRWTH/docextract/internal/cli"
	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/export"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/pipeline"
	"github.com/MuhammadZahidRWTH/docextract/internal/storage"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file|dir>...",
		Short: "Extract fields from documents",
		Long: `Extract the general and domain fields of each document and write one
<name>.json record per file to the output directory.

Directories are searched recursively for .pdf, .txt, .ofx/.qfx and image files.
Scanned PDFs and images are read with OCR. Records are also stored in the result
database unless --no-store is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().StringP("out", "o", "", "output directory for JSON records")
	cmd.Flags().IntP("workers", "w", 0, "files processed in parallel")
	cmd.Flags().String("lang", "", "skip detection and use this language (en, de, fr, es, it)")
	cmd.Flags().String("xlsx", "", "also write all records of this run to an XLSX workbook")
	cmd.Flags().Bool("no-store", false, "do not store records in the result database")
	cmd.Flags().BoolP("quiet", "q", false, "no progress bar or summary")

	_ = viper.BindPFlag("output.dir", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("language.force", cmd.Flags().Lookup("lang"))

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	noStore, _ := cmd.Flags().GetBool("no-store")
	quiet, _ := cmd.Flags().GetBool("quiet")

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return common.NewUserError("No supported documents found", common.ErrNotFound)
	}

	processor, err := newProcessor(cfg)
	if err != nil {
		return err
	}
	writer, err := export.NewJSONWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}

	var store *storage.SQLiteStorage
	var sink *runSink
	if cfg.Database.Enabled && !noStore {
		store, err = initStorage(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer func() { _ = store.Close() }()

		sink, err = startRunSink(cmd.Context(), store)
		if err != nil {
			return err
		}
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), store != nil)
	defer interrupts.Stop()

	slog.Info("Starting extraction", "files", len(files), "workers", cfg.Batch.Workers)

	var progress *cli.Progress
	if !quiet {
		progress = cli.NewProgress(cmd.ErrOrStderr(), len(files), "Extracting documents...")
	}

	start := time.Now()
	results, batchErr := processor.Batch(ctx, files, pipeline.BatchOptions{
		Workers: cfg.Batch.Workers,
		OnDone: func(r pipeline.Result) {
			if progress != nil {
				progress.Done()
			}
			if r.Err != nil {
				common.LogError(r.Err, "Failed to process file", common.Fields{"file": r.Path})
			}
			if sink != nil {
				sink.save(r)
			}
		},
	})
	if progress != nil && batchErr == nil {
		progress.Finish()
	}

	names := export.Names(files)
	var records []model.OutputRecord
	var done []pipeline.Result
	for _, r := range results {
		if r.Path == "" {
			continue // never started
		}
		done = append(done, r)
		if r.Err != nil {
			continue
		}
		path, err := writer.Write(names[r.Path], r.Record)
		if err != nil {
			return err
		}
		slog.Debug("Wrote record", "file", r.Path, "output", path)
		records = append(records, r.Record)
	}

	if sink != nil {
		if err := sink.finish(); err != nil {
			return err
		}
	}

	if xlsxPath != "" {
		if err := writeWorkbook(xlsxPath, records); err != nil {
			return err
		}
	}

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, cli.ResultsTable(done))
		fmt.Fprintln(out, cli.RenderSummary(cli.Summarize(done, time.Since(start))))
	}

	if batchErr != nil {
		return fmt.Errorf("extraction stopped after %d of %d files: %w", len(done), len(files), batchErr)
	}
	return nil
}

// runSink stores each finished file of one run as soon as its worker reports it, so an
// interrupted batch keeps everything it completed.
type runSink struct {
	ctx      context.Context
	store    *storage.SQLiteStorage
	runID    string
	mu       sync.Mutex
	err      error
	stored   int
	failures int
}

func startRunSink(ctx context.Context, store *storage.SQLiteStorage) (*runSink, error) {
	// Saving outlives the interrupt that cancels the batch.
	ctx = context.WithoutCancel(ctx)
	run, err := store.StartRun(ctx)
	if err != nil {
		return nil, err
	}
	return &runSink{ctx: ctx, store: store, runID: run.ID}, nil
}

// save is called from the batch workers.
func (s *runSink) save(r pipeline.Result) {
	var err error
	if r.Err != nil {
		err = s.store.SaveFailure(s.ctx, s.runID, storage.Failure{Path: r.Path, Error: r.Err.Error()})
	} else {
		err = s.store.SaveRecord(s.ctx, s.runID, r.Path, r.Record)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		if s.err == nil {
			s.err = fmt.Errorf("failed to store %s: %w", r.Path, err)
		}
	case r.Err != nil:
		s.failures++
	default:
		s.stored++
	}
}

func (s *runSink) finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.FinishRun(s.ctx, s.runID, s.stored, s.failures); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	slog.Info("Stored run", "run_id", s.runID, "records", s.stored, "failed", s.failures)
	return nil
}

func writeWorkbook(path string, records []model.OutputRecord) error {
	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // user-selected output file
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.NewXLSX(registry, slog.Default()).Write(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
