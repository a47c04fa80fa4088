package models

import "encoding/json"

// Table is the wire envelope for every datastore document: a JSON object
// with a single "rows" array. Rows stay raw so that fields written by other
// tooling survive a read-modify-write cycle untouched.
type Table struct {
	Rows []json.RawMessage `json:"rows"`
}

// NewTable returns an empty table whose rows marshal as [] rather than null.
func NewTable() Table {
	return Table{Rows: []json.RawMessage{}}
}

// Append marshals v and adds it as a new row.
func (t *Table) Append(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.Rows = append(t.Rows, raw)
	return nil
}

// Replace marshals v and overwrites the row at index i.
func (t *Table) Replace(i int, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.Rows[i] = raw
	return nil
}
