package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MuhammadZahidRWTH/docextract/internal/cli"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/storage"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored records to an XLSX workbook",
		Long: `Write stored records to an XLSX workbook with one sheet per document type.

By default every stored record is exported; --run, --type and --lang narrow the
selection. Use --runs to list the stored runs instead.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "records.xlsx", "workbook path")
	cmd.Flags().String("run", "", "only records of this run id")
	cmd.Flags().String("type", "", "only records of this document type")
	cmd.Flags().String("lang", "", "only records in this language")
	cmd.Flags().Bool("runs", false, "list stored runs and exit")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	runID, _ := cmd.Flags().GetString("run")
	docType, _ := cmd.Flags().GetString("type")
	lang, _ := cmd.Flags().GetString("lang")
	listRuns, _ := cmd.Flags().GetBool("runs")

	ctx := cmd.Context()
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	if listRuns {
		runs, err := store.ListRuns(ctx)
		if err != nil {
			return err
		}
		for _, r := range runs {
			status := "running"
			if r.FinishedAt != nil {
				status = fmt.Sprintf("%d processed, %d failed", r.Processed, r.Failed)
			}
			fmt.Fprintf(out, "%s  %s  %s\n", r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), status)
		}
		return nil
	}

	stored, err := store.ListRecords(ctx, storage.RecordFilter{
		RunID:    runID,
		Type:     model.DocumentType(docType),
		Language: model.Language(lang),
	})
	if err != nil {
		return err
	}

	records := make([]model.OutputRecord, 0, len(stored))
	for _, s := range stored {
		records = append(records, s.Record)
	}
	if err := writeWorkbook(output, records); err != nil {
		return err
	}

	slog.Info("Exported records", "path", output, "records", len(records))
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Exported %d records to %s", len(records), output)))
	return nil
}
