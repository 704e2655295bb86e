package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/schema"
)

const defaultSheet = "Sheet1"

var sheetOrder = append(append([]model.DocumentType{}, model.DocumentTypes...), model.DocumentTypeUnknown)

// XLSX builds a workbook with one sheet per document type. Each sheet has a
// header row of file_name, the general keys and the type's keys.
type XLSX struct {
	registry *schema.Registry
	logger   *slog.Logger
}

// NewXLSX creates an XLSX exporter. A nil registry uses the built-in definitions.
func NewXLSX(registry *schema.Registry, logger *slog.Logger) *XLSX {
	if registry == nil {
		registry = schema.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSX{registry: registry, logger: logger}
}

// Write writes the workbook for records to w.
func (x *XLSX) Write(w io.Writer, records []model.OutputRecord) error {
	start := time.Now()

	byType := make(map[model.DocumentType][]model.OutputRecord)
	for _, r := range records {
		t := r.Type
		if t == "" {
			t = model.DocumentTypeUnknown
		}
		byType[t] = append(byType[t], r)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheets := 0
	for _, t := range sheetOrder {
		rows, ok := byType[t]
		if !ok {
			continue
		}
		if err := x.addSheet(f, t, rows, sheets == 0); err != nil {
			return err
		}
		sheets++
	}
	if sheets == 0 {
		// An empty export still gets a header row.
		if err := x.addSheet(f, model.DocumentTypeUnknown, nil, true); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	x.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"sheets", max(sheets, 1),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (x *XLSX) addSheet(f *excelize.File, t model.DocumentType, rows []model.OutputRecord, first bool) error {
	sheet := string(t)
	if first {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}

	general := x.registry.GeneralKeys()
	domain := x.registry.DomainKeys(t)

	headers := make([]any, 0, 1+len(general)+len(domain))
	headers = append(headers, "file_name")
	for _, k := range general {
		headers = append(headers, string(k))
	}
	for _, k := range domain {
		headers = append(headers, string(k))
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		values := make([]any, 0, len(headers))
		values = append(values, r.FileName)
		for _, k := range general {
			values = append(values, cellValue(r.General, k))
		}
		for _, k := range domain {
			values = append(values, cellValue(r.Domain, k))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	last, _ := excelize.ColumnNumberToName(len(headers))
	_ = f.SetColWidth(sheet, "A", last, 22)
	return nil
}

// cellValue keeps counts numeric so the sheet can sum them.
func cellValue(fields model.FieldSet, k model.Key) any {
	if n, ok := fields.Int(k); ok {
		return n
	}
	return fields.String(k)
}
