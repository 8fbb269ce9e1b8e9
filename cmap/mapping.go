package cmap

import "fmt"

// ToMapping returns the interchange form used by legacy callers: a mapping
// with the keys name, colors, vmin, vmax, autoscale and normalization.
// Absent values are present as nil; the color table is a deep copy;
// autoscale is the derived flag, not stored state.
func (c *Colormap) ToMapping() map[string]interface{} {
	m := map[string]interface{}{
		"name":          nil,
		"colors":        nil,
		"vmin":          nil,
		"vmax":          nil,
		"autoscale":     c.IsAutoscale(),
		"normalization": string(c.norm),
	}
	if c.name != nil {
		m["name"] = *c.name
	}
	if c.colors != nil {
		m["colors"] = c.colors.Clone()
	}
	if c.vmin != nil {
		m["vmin"] = *c.vmin
	}
	if c.vmax != nil {
		m["vmax"] = *c.vmax
	}
	return m
}

// FromMapping builds a colormap from the interchange form, subject to the
// validation rules of SetFromMapping.
func FromMapping(m map[string]interface{}) (*Colormap, error) {
	c := &Colormap{norm: Linear}
	if err := c.SetFromMapping(m); err != nil {
		return nil, err
	}
	return c, nil
}

// SetFromMapping replaces every field of the colormap from the interchange
// form, then emits a single change notification. Validation happens before
// any field is written, so a failing call leaves the colormap untouched.
//
// The rules: at least one of name and colors must be non-nil; normalization,
// when present, must be "linear" or "log" (absent defaults to linear with a
// logged warning); an autoscale flag must be a bool consistent with the
// bounds, true demanding both nil and false demanding at least one set.
// Rule violations fail with InvalidSpecError; a malformed color table fails
// with InvalidColorTableError.
func (c *Colormap) SetFromMapping(m map[string]interface{}) error {
	rawName := m["name"]
	rawColors := m["colors"]
	rawVMin := m["vmin"]
	rawVMax := m["vmax"]
	rawNorm, hasNorm := m["normalization"]
	if !hasNorm {
		logger.Warn("normalization missing from colormap description, set by default to linear")
	}

	if rawName == nil && rawColors == nil {
		return &InvalidSpecError{Reason: "a name or a table of colors must be defined"}
	}

	norm := Linear
	if hasNorm {
		s, ok := rawNorm.(string)
		if !ok {
			return &InvalidSpecError{Reason: fmt.Sprintf("normalization must be a string, got %T", rawNorm)}
		}
		norm = Normalization(s)
		if !norm.valid() {
			return &InvalidSpecError{Reason: fmt.Sprintf("normalization %q is not recognized", norm)}
		}
	}

	var name *string
	if rawName != nil {
		s, ok := rawName.(string)
		if !ok {
			return &InvalidSpecError{Reason: fmt.Sprintf("name must be a string, got %T", rawName)}
		}
		name = &s
	}

	vmin, err := decodeBound("vmin", rawVMin)
	if err != nil {
		return err
	}
	vmax, err := decodeBound("vmax", rawVMax)
	if err != nil {
		return err
	}

	if rawAutoscale, ok := m["autoscale"]; ok {
		autoscale, ok := rawAutoscale.(bool)
		if !ok {
			return &InvalidSpecError{Reason: "autoscale must be true or false"}
		}
		if autoscale && (vmin != nil || vmax != nil) {
			return &InvalidSpecError{Reason: "autoscale is requested but vmin or vmax is defined"}
		}
		if !autoscale && vmin == nil && vmax == nil {
			return &InvalidSpecError{Reason: "autoscale is not requested but neither vmin nor vmax is defined"}
		}
	}

	colors, err := decodeColors(rawColors)
	if err != nil {
		return err
	}
	if err := colors.Validate(); err != nil {
		return err
	}
	if len(colors) == 0 {
		colors = nil
	}

	c.name = name
	c.colors = colors
	c.norm = norm
	c.vmin = vmin
	c.vmax = vmax
	c.changed.Emit()
	return nil
}

func decodeBound(key string, v interface{}) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, &InvalidSpecError{Reason: fmt.Sprintf("%s must be a number, got %T", key, v)}
	}
	return &f, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func decodeColors(v interface{}) (ColorTable, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case ColorTable:
		return t.Clone(), nil
	case [][]float64:
		return ColorTable(t).Clone(), nil
	case []interface{}:
		table := make(ColorTable, len(t))
		for i, raw := range t {
			row, err := decodeColorRow(raw)
			if err != nil {
				return nil, err
			}
			table[i] = row
		}
		return table, nil
	default:
		return nil, &InvalidColorTableError{Reason: fmt.Sprintf("colors must be a table of numbers, got %T", v)}
	}
}

func decodeColorRow(v interface{}) ([]float64, error) {
	switch r := v.(type) {
	case []float64:
		row := make([]float64, len(r))
		copy(row, r)
		return row, nil
	case []interface{}:
		row := make([]float64, len(r))
		for i, raw := range r {
			f, ok := toFloat(raw)
			if !ok {
				return nil, &InvalidColorTableError{Reason: fmt.Sprintf("color component must be a number, got %T", raw)}
			}
			row[i] = f
		}
		return row, nil
	default:
		return nil, &InvalidColorTableError{Reason: fmt.Sprintf("color table row must be a list of numbers, got %T", v)}
	}
}
