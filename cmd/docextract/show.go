package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/export"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document_id>",
		Short: "Print the stored record of a document",
		Long: `Print the most recently stored record with the given document id as JSON,
in the same form extract writes it.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	stored, err := store.GetRecord(ctx, args[0])
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(fmt.Sprintf("No stored record with document id %s", args[0]), err)
	}
	if err != nil {
		return err
	}

	data, err := export.Marshal(stored.Record)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "run %s, %s\n", stored.RunID, stored.Source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
