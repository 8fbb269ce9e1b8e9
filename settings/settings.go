// Package settings loads colormap descriptions from configuration files.
// The model itself owns no file surface; this package adapts TOML, JSON and
// YAML files onto the mapping codec, including the hex color notation
// config files favor over numeric tables.
//
// A description may sit at the top level of the file or nested under a
// "colormap" table, so colormaps can live inside a larger application
// config.
package settings

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plotforge/cmapkit/cmap"
)

// Load reads a colormap description from path. The format follows the file
// extension: .toml, .json, .yaml or .yml.
func Load(path string) (*cmap.Colormap, error) {
	parser, err := parserFor(formatFromPath(path))
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("settings: load %s: %w", path, err)
	}
	return colormapFromKoanf(k)
}

// Parse decodes a colormap description from raw bytes in the given format
// ("toml", "json", "yaml").
func Parse(b []byte, format string) (*cmap.Colormap, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(b), parser); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", format, err)
	}
	return colormapFromKoanf(k)
}

// Watch loads path and invokes fn once with the result, then again with a
// freshly parsed colormap (or an error) every time the file changes on
// disk. Reload callbacks run on the watcher's goroutine; the caller owns
// any synchronization with its model instance. The returned stop function
// ends the watch.
func Watch(path string, fn func(*cmap.Colormap, error)) (stop func() error, err error) {
	parser, err := parserFor(formatFromPath(path))
	if err != nil {
		return nil, err
	}
	f := file.Provider(path)
	k := koanf.New(".")
	if err := k.Load(f, parser); err != nil {
		return nil, fmt.Errorf("settings: load %s: %w", path, err)
	}
	cm, err := colormapFromKoanf(k)
	if err != nil {
		return nil, err
	}

	if err := f.Watch(func(event interface{}, err error) {
		if err != nil {
			fn(nil, fmt.Errorf("settings: watch %s: %w", path, err))
			return
		}
		k := koanf.New(".")
		if err := k.Load(f, parser); err != nil {
			fn(nil, fmt.Errorf("settings: reload %s: %w", path, err))
			return
		}
		fn(colormapFromKoanf(k))
	}); err != nil {
		return nil, fmt.Errorf("settings: watch %s: %w", path, err)
	}
	fn(cm, nil)
	return f.Unwatch, nil
}

func formatFromPath(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func parserFor(format string) (koanf.Parser, error) {
	switch strings.ToLower(format) {
	case "toml":
		return toml.Parser(), nil
	case "json":
		return json.Parser(), nil
	case "yaml", "yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("settings: unsupported format %q (toml, json and yaml are supported)", format)
	}
}

func colormapFromKoanf(k *koanf.Koanf) (*cmap.Colormap, error) {
	m := k.Raw()
	if nested, ok := m["colormap"].(map[string]interface{}); ok {
		m = nested
	}
	if err := normalizeHexColors(m); err != nil {
		return nil, err
	}
	return cmap.FromMapping(m)
}

// normalizeHexColors rewrites hex string rows in the colors entry into the
// numeric rows the mapping codec accepts. Non-string rows pass through
// untouched.
func normalizeHexColors(m map[string]interface{}) error {
	rows, ok := m["colors"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]interface{}, len(rows))
	for i, raw := range rows {
		s, ok := raw.(string)
		if !ok {
			out[i] = raw
			continue
		}
		row, err := hexRow(s)
		if err != nil {
			return &cmap.InvalidColorTableError{Reason: fmt.Sprintf("row %d: %v", i, err)}
		}
		out[i] = row
	}
	m["colors"] = out
	return nil
}

func hexRow(s string) ([]float64, error) {
	if len(s) == 9 {
		alpha, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid alpha in color %q", s)
		}
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return nil, err
		}
		return []float64{c.R, c.G, c.B, float64(alpha) / 255}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return []float64{c.R, c.G, c.B}, nil
}
