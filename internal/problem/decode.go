package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names an encoding of problem files.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Decode parses data in the given format. Unknown fields are rejected so
// that typos in field names surface instead of silently yielding zero values.
func Decode(data []byte, format Format) (Problem, error) {
	var p Problem
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Problem{}, fmt.Errorf("problem: decode json: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Problem{}, fmt.Errorf("problem: decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Problem{}, fmt.Errorf("problem: decode yaml: %w", err)
		}
	default:
		return Problem{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return p, nil
}

// Load reads and decodes the problem file at path, choosing the format from
// its extension.
func Load(path string) (Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Problem{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("problem: read %s: %w", path, err)
	}

	return Decode(data, format)
}
