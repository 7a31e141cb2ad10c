// Package output serializes a manual.Program as JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/gmdoc/internal/manual"
	"gopkg.in/yaml.v3"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Write encodes program to w in the given format (json, yaml or yml).
func Write(w io.Writer, format string, program *manual.Program) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(program); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(program); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
	return nil
}

// WriteFile writes program to path, or to stdout when path is Stdout.
// The parent directory must already exist.
func WriteFile(path, format string, program *manual.Program, stdout io.Writer) error {
	if path == Stdout {
		return Write(stdout, format, program)
	}

	dir := filepath.Dir(path)
	if fi, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist", dir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(f, format, program); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
