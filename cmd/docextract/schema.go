package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MuhammadZahidRWTH/docextract/internal/cli"
	"github.com/MuhammadZahidRWTH/docextract/internal/schema"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print or validate field definitions",
		Long: `Print the active field-definition registry as JSON. With --validate, check a
definition file against the registry JSON Schema and the known field names instead.`,
		Args: cobra.NoArgs,
		RunE: runSchema,
	}

	cmd.Flags().String("validate", "", "definition file to validate")

	return cmd
}

func runSchema(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if path, _ := cmd.Flags().GetString("validate"); path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // user-selected input file
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := schema.Validate(data); err != nil {
			return err
		}
		fmt.Fprintln(out, cli.FormatSuccess(path+" is valid"))
		return nil
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(registry.Definitions(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
