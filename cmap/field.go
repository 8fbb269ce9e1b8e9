package cmap

// Field names a colormap attribute for Value lookups. It is the closed
// replacement for the string-keyed item access legacy callers used.
type Field string

const (
	FieldName          Field = "name"
	FieldColors        Field = "colors"
	FieldNormalization Field = "normalization"
	FieldVMin          Field = "vmin"
	FieldVMax          Field = "vmax"
	FieldAutoscale     Field = "autoscale"
)

// Fields returns the recognized fields.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldColors,
		FieldNormalization,
		FieldVMin,
		FieldVMax,
		FieldAutoscale,
	}
}

// Value returns the current value of field f:
//
//	FieldName          string, or nil when unnamed
//	FieldColors        ColorTable deep copy, or nil
//	FieldNormalization Normalization
//	FieldVMin, FieldVMax float64, or nil when autoscaled
//	FieldAutoscale     bool
//
// Absent optional values are untyped nil. Unrecognized fields fail with
// UnknownFieldError.
func (c *Colormap) Value(f Field) (interface{}, error) {
	switch f {
	case FieldName:
		if c.name == nil {
			return nil, nil
		}
		return *c.name, nil
	case FieldColors:
		if c.colors == nil {
			return nil, nil
		}
		return c.colors.Clone(), nil
	case FieldNormalization:
		return c.norm, nil
	case FieldVMin:
		if c.vmin == nil {
			return nil, nil
		}
		return *c.vmin, nil
	case FieldVMax:
		if c.vmax == nil {
			return nil, nil
		}
		return *c.vmax, nil
	case FieldAutoscale:
		return c.IsAutoscale(), nil
	default:
		return nil, &UnknownFieldError{Field: string(f)}
	}
}
