// Package export writes output records as JSON files and XLSX workbooks.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// JSONWriter writes one <name>.json file per record into a directory.
type JSONWriter struct {
	dir string
}

// NewJSONWriter creates the output directory if needed.
func NewJSONWriter(dir string) (*JSONWriter, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &JSONWriter{dir: dir}, nil
}

// Stem is the output name of a document: its base name without the extension.
func Stem(fileName string) string {
	base := filepath.Base(fileName)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = base
	}
	return name
}

// Names assigns every path a distinct output name. Paths are taken in order; the first
// one keeps its stem and later ones sharing it get "-2", "-3" and so on. Names are compared
// case-insensitively so they stay distinct on case-folding file systems.
func Names(paths []string) map[string]string {
	out := make(map[string]string, len(paths))
	used := make(map[string]bool, len(paths))
	for _, p := range paths {
		if _, ok := out[p]; ok {
			continue
		}
		stem := Stem(p)
		name := stem
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s-%d", stem, n)
		}
		used[strings.ToLower(name)] = true
		out[p] = name
	}
	return out
}

// Path returns the file a record named name is written to.
func (w *JSONWriter) Path(name string) string {
	return filepath.Join(w.dir, name+".json")
}

// Write encodes the record with two-space indentation into <dir>/<name>.json and returns
// the written path.
func (w *JSONWriter) Write(name string, record model.OutputRecord) (string, error) {
	data, err := Marshal(record)
	if err != nil {
		return "", err
	}
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Marshal encodes a record the way Write stores it.
func Marshal(record model.OutputRecord) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", record.FileName, err)
	}
	return append(data, '\n'), nil
}
