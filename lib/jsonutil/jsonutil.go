package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile decodes an entire JSON file into T.
func ReadFile[T any](path string) (T, error) {
	var out T
	raw, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	if err != nil {
		return out, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// WriteFile pretty-prints v to path. Html escaping is turned off so urls and
// non-ascii text survive a round trip through the output files.
func WriteFile(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	err := enc.Encode(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
