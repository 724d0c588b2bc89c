// Package gridfile loads declarative grid layouts.
//
// A layout file describes one root container and, recursively, the widgets
// placed in it. TOML and YAML files share one schema (Desc); JavaScript files
// build the layout imperatively through a small scripting API (see RunScript).
package gridfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies how a layout file is written.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatScript
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatScript:
		return "js"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".js":
		return FormatScript, nil
	}
	return 0, fmt.Errorf("%s: unsupported layout file extension", path)
}

// Desc describes a container or a leaf. The top-level Desc is the root; its
// Row, Column and Sticky are ignored and its Width and Height are the
// external size of the layout. A Desc with child widgets, or with Container
// set, is a nested container: its Width and Height are its own requested
// size, which holds when Propagate is false or the container is empty.
type Desc struct {
	Name   string `toml:"name" yaml:"name"`
	Row    int    `toml:"row" yaml:"row"`
	Column int    `toml:"column" yaml:"column"`
	Sticky string `toml:"sticky" yaml:"sticky"`

	// Requested size, or the root's external size.
	Width  *int `toml:"width" yaml:"width"`
	Height *int `toml:"height" yaml:"height"`

	Container     bool   `toml:"container" yaml:"container"`
	SelfSizing    bool   `toml:"self_sizing" yaml:"self_sizing"`
	Propagate     *bool  `toml:"propagate" yaml:"propagate"`
	ExpandColumns []int  `toml:"expand_columns" yaml:"expand_columns"`
	ExpandRows    []int  `toml:"expand_rows" yaml:"expand_rows"`
	Widgets       []Desc `toml:"widgets" yaml:"widgets"`
}

// IsContainer reports whether d describes a container.
func (d *Desc) IsContainer() bool {
	return d.Container || len(d.Widgets) > 0
}

// Decode parses a TOML or YAML description. Unknown keys are errors.
func Decode(data []byte, format Format) (*Desc, error) {
	var d Desc
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode: %s is not a declarative format", format)
	}
	return &d, nil
}

// Load reads a layout file and builds it. The format comes from the extension.
func Load(path string) (*Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if format == FormatScript {
		l, err := RunScript(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return l, nil
	}

	d, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l, err := Build(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
