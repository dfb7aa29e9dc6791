package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/objects/pkg/sanitize"
)

// Document formats.
const (
	FormatAuto = ""
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe a document on stdin")

// ReadDocument reads path, or stdin when path is "" or "-", and applies the
// input guard (size limit, UTF-8).
func ReadDocument(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, ErrNoInput
		}
		// Read one byte past the limit so oversize input is reported, not cut.
		data, err = io.ReadAll(io.LimitReader(stdin, int64(sanitize.MaxInputSize())+1))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return sanitize.Input(data)
}

// DetectFormat picks a format from the file extension, falling back to
// sniffing the first non-blank byte.
func DetectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[' || trimmed[0] == '"') {
		return FormatJSON
	}
	return FormatYAML
}

// DecodeDocument decodes data into the generic value universe. JSON numbers
// are kept as json.Number so large integers survive.
func DecodeDocument(data []byte, format string) (any, error) {
	var v any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to parse JSON input: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("failed to parse JSON input: trailing data")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML input: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	return v, nil
}

// LoadDocument reads and decodes one input document.
func LoadDocument(path, format string, stdin io.Reader) (any, error) {
	data, err := ReadDocument(path, stdin)
	if err != nil {
		return nil, err
	}
	if format == FormatAuto {
		format = DetectFormat(path, data)
	}
	return DecodeDocument(data, format)
}
