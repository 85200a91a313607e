package survey

import "math"

// Table is one wave's respondent data in column-major form. Cells are
// float64 with NaN marking a missing response, mirroring how the source
// statistical package represents its data.
type Table struct {
	cols map[string][]float64
	rows int
}

// NewTable builds a Table from named columns. Columns shorter than the
// longest one are padded with missing values.
func NewTable(cols map[string][]float64) *Table {
	rows := 0
	for _, c := range cols {
		if len(c) > rows {
			rows = len(c)
		}
	}
	padded := make(map[string][]float64, len(cols))
	for name, c := range cols {
		if len(c) < rows {
			full := make([]float64, rows)
			copy(full, c)
			for i := len(c); i < rows; i++ {
				full[i] = math.NaN()
			}
			c = full
		}
		padded[name] = c
	}
	return &Table{cols: padded, rows: rows}
}

// Len returns the number of respondent rows.
func (t *Table) Len() int { return t.rows }

// Has reports whether the table carries the named variable.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Value returns the cell for a row and variable. ok is false when the
// variable is absent from this wave or the cell is a missing response.
func (t *Table) Value(row int, name string) (float64, bool) {
	col, exists := t.cols[name]
	if !exists || row < 0 || row >= t.rows {
		return 0, false
	}
	v := col[row]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Meta carries the wave's codebook: per-variable dictionaries from raw
// numeric code to display text. Read-only once loaded.
type Meta struct {
	VariableValueLabels map[string]map[int]string
}

// Label resolves a raw code for a variable to its display text.
func (m *Meta) Label(name string, code float64) (string, bool) {
	labels, ok := m.VariableValueLabels[name]
	if !ok {
		return "", false
	}
	text, ok := labels[int(code)]
	return text, ok
}
