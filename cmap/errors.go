package cmap

import "fmt"

// InvalidColorTableError reports a color table that is not a recognized
// rectangular RGB(A) table of valid values.
type InvalidColorTableError struct {
	Reason string
}

func (e *InvalidColorTableError) Error() string {
	return "cmap: invalid color table: " + e.Reason
}

// InvalidSpecError reports a mapping that violates the consistency rules of
// the interchange form: missing identification, an unrecognized
// normalization, or an autoscale flag contradicting the bounds.
type InvalidSpecError struct {
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return "cmap: invalid colormap description: " + e.Reason
}

// NoPositiveDataError reports that a logarithmic range needed the smallest
// positive sample as a substitute bound but the data holds none.
type NoPositiveDataError struct{}

func (e *NoPositiveDataError) Error() string {
	return "cmap: logarithmic bounds need positive data but none is present"
}

// UnsupportedNormalizationError reports a normalization outside the managed
// set.
type UnsupportedNormalizationError struct {
	Normalization string
}

func (e *UnsupportedNormalizationError) Error() string {
	return fmt.Sprintf("cmap: unsupported normalization %q", e.Normalization)
}

// UnknownFieldError reports a Value lookup for a field the colormap does not
// expose.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("cmap: unknown colormap field %q", e.Field)
}
