package cmap

// Normalization selects the mapping family used to translate data values
// into colormap positions.
type Normalization string

const (
	// Linear maps values proportionally between the bounds.
	Linear Normalization = "linear"
	// Logarithm maps the logarithm of values between the bounds. It is only
	// defined for positive values, which drives the range substitution rules.
	Logarithm Normalization = "log"
)

// Default range bounds used when neither explicit bounds nor data are
// available.
const (
	DefaultMinLinear = 0.0
	DefaultMaxLinear = 1.0
	DefaultMinLog    = 1.0
	DefaultMaxLog    = 10.0
)

// Normalizations returns the managed normalizations.
func Normalizations() []Normalization {
	return []Normalization{Linear, Logarithm}
}

// String returns the interchange form, "linear" or "log".
func (n Normalization) String() string {
	return string(n)
}

func (n Normalization) valid() bool {
	return n == Linear || n == Logarithm
}

func (n Normalization) defaultMin() float64 {
	if n == Logarithm {
		return DefaultMinLog
	}
	return DefaultMinLinear
}

func (n Normalization) defaultMax() float64 {
	if n == Logarithm {
		return DefaultMaxLog
	}
	return DefaultMaxLinear
}
