package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an input document.
type Format string

const (
	// JSON documents are decoded with encoding/json.
	JSON Format = "json"
	// YAML documents are decoded with gopkg.in/yaml.v3.
	YAML Format = "yaml"
)

// ErrParse is returned when an input document cannot be decoded.
var ErrParse = errors.New("unable to parse input")

// FormatFromPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

func decode(r io.Reader, format Format, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	switch format {
	case YAML:
		err = yaml.Unmarshal(data, out)
	case JSON, "":
		err = json.Unmarshal(data, out)
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrParse, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}

func load(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := decode(f, FormatFromPath(path), out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
