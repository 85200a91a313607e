package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tscs-pipeline/models"
)

// JSONWriter emits chart artifacts as pretty-printed UTF-8 JSON files.
// Each artifact is marshaled fully in memory and written in one call, so
// a failed year never leaves a partial file behind.
type JSONWriter struct {
	dir string
}

// NewJSONWriter creates the output directory if absent and returns a
// ready-to-use writer.
func NewJSONWriter(dir string) (*JSONWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("json: create output dir %q: %w", dir, err)
	}
	return &JSONWriter{dir: dir}, nil
}

// WriteSankey writes wealth_data_<year>.json.
func (w *JSONWriter) WriteSankey(data *models.SankeyData) error {
	return w.writeFile(fmt.Sprintf("wealth_data_%d.json", data.Year), data)
}

// WriteGrid writes grid_viz_data_<year>.json.
func (w *JSONWriter) WriteGrid(data *models.GridData) error {
	return w.writeFile(fmt.Sprintf("grid_viz_data_%d.json", data.Year), data)
}

// WriteComparison writes the cross-year comparison_data.json.
func (w *JSONWriter) WriteComparison(data *models.ComparisonData) error {
	return w.writeFile("comparison_data.json", data)
}

func (w *JSONWriter) writeFile(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json: encode %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", path, err)
	}
	return nil
}
