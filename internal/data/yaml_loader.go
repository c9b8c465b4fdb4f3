package data

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAMLTables reads a table set from a single YAML document.
func LoadYAMLTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}
	t, err := ParseYAMLTables(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing tables %s: %w", path, err)
	}
	return t, nil
}

// ParseYAMLTables decodes a table set. Unknown keys are rejected.
func ParseYAMLTables(raw []byte) (*Tables, error) {
	var t Tables
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &t, nil
}

// WriteYAMLTables encodes t to w.
func WriteYAMLTables(w io.Writer, t *Tables) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding tables: %w", err)
	}
	return enc.Close()
}
