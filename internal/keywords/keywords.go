// Package keywords loads the manual's keyword table, which maps an entity
// name to the path of its documentation page.
package keywords

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Table maps an entity name to a URL path fragment such as
// "GameMaker_Language/GML_Reference/Maths_And_Numbers/Number_Functions/abs".
type Table map[string]string

// Lookup returns the fragment for name.
func (t Table) Lookup(name string) (string, bool) {
	fragment, ok := t[name]
	return fragment, ok
}

// Load decodes a JSON object of string values.
func Load(r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)
	var table Table
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("decode keyword table: %w", err)
	}
	if table == nil {
		return nil, fmt.Errorf("decode keyword table: expected a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode keyword table: unexpected data after the object")
	}
	return table, nil
}

// LoadFile reads the table from path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open keyword table: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}
