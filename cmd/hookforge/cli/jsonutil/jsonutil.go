// Package jsonutil holds small JSON formatting helpers shared across
// the CLI.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// MarshalIndentWithNewline marshals v with indentation and a trailing
// newline, the shape editors and diff tools expect for files on disk.
func MarshalIndentWithNewline(v any, prefix, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(v, prefix, indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// IndentWithNewline reformats already-encoded JSON with indentation
// and a trailing newline without reparsing it into Go values, so key
// order survives.
func IndentWithNewline(raw []byte, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
