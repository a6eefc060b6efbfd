package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Row is one appended JSON object, keyed by column name.
type Row map[string]any

// DecodeRow accepts a single JSON object. Arrays and scalars are rejected.
func DecodeRow(payload []byte) (Row, error) {
	row := Row{}
	if err := json.Unmarshal(payload, &row); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("decode row: expected a JSON object")
	}
	return row, nil
}

// Columns returns the row's keys in sorted order.
func (r Row) Columns() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Cell flattens a value for storage in a single cell: strings, numbers and
// bools stay as they are; nested values are stored as JSON text.
func Cell(v any) any {
	switch v := v.(type) {
	case nil:
		return ""
	case string, float64, bool:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}
