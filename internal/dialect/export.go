package dialect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteKeywords writes the keyword dataset as a single JSON document,
// creating the parent directory if needed. Each run fully overwrites
// the target file.
func WriteKeywords(path string, set KeywordSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}
	return writeFile(path, data)
}

// WriteFunctions writes the function dictionary as pretty-printed JSON
// with four-space indentation, creating the parent directory if needed.
func WriteFunctions(path string, dict map[string]FunctionDoc) error {
	data, err := json.MarshalIndent(dict, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding functions: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
