package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/pipeline"
)

// Summary counts the outcome of a batch.
type Summary struct {
	ByType    map[model.DocumentType]int
	Elapsed   time.Duration
	Processed int
	Failed    int
}

// Summarize counts results per inferred type.
func Summarize(results []pipeline.Result, elapsed time.Duration) Summary {
	s := Summary{ByType: make(map[model.DocumentType]int), Elapsed: elapsed}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Processed++
		s.ByType[r.Record.Type]++
	}
	return s
}

// ResultsTable renders one row per file.
func ResultsTable(results []pipeline.Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		}).
		Headers("FILE", "TYPE", "LANGUAGE", "DOCUMENT ID", "STATUS")

	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Err != nil {
			t.Row(name, "-", "-", "-", ErrorStyle.Render(ErrorIcon+" "+r.Err.Error()))
			continue
		}
		t.Row(
			name,
			string(r.Record.Type),
			r.Record.General.String(model.KeyLanguage),
			r.Record.DocumentID(),
			SuccessStyle.Render(SuccessIcon),
		)
	}
	return t.String()
}

// RenderSummary renders the batch totals in a box.
func RenderSummary(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  • Files processed: %d\n", s.Processed)
	if s.Failed > 0 {
		fmt.Fprintf(&b, "  • Files failed: %s\n", ErrorStyle.Render(fmt.Sprint(s.Failed)))
	}
	for _, t := range append(append([]model.DocumentType{}, model.DocumentTypes...), model.DocumentTypeUnknown) {
		if n := s.ByType[t]; n > 0 {
			fmt.Fprintf(&b, "  • %s: %d\n", t, n)
		}
	}
	fmt.Fprintf(&b, "  • Time taken: %s", s.Elapsed.Round(time.Millisecond))

	return RenderBox(ChartIcon+" Extraction Complete", b.String())
}
