package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MuhammadZahidRWTH/docextract/internal/cli"
	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/pipeline"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Print the detected language of documents",
		Long: `Read each file the same way extract does and print the detected language
(en, de, fr, es, it, unsupported or unknown) and the language whose label rules
read it. Unsupported and unknown documents are read with the English rules.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	processor, err := newProcessor(cfg)
	if err != nil {
		return err
	}
	detector, err := newDetector(cfg)
	if err != nil {
		return err
	}

	rulesOf := pipeline.New()
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range files {
		text, err := processor.Text(cmd.Context(), path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s\t%s\n", filepath.Base(path), cli.FormatError(err.Error()))
			continue
		}
		lang := detector.Detect(text)
		fmt.Fprintf(out, "%s\t%s\trules=%s\n", filepath.Base(path), lang, rulesOf.RuleLanguage(lang))
	}

	if failed > 0 {
		return common.NewUserError(fmt.Sprintf("%d of %d files could not be read", failed, len(files)), common.ErrNoText)
	}
	return nil
}
