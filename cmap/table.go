package cmap

import (
	"image/color"
	"math"
)

// ColorTable is an explicit list of colormap entries, one row per color with
// three (RGB) or four (RGBA) columns. A valid table is rectangular and holds
// either 8-bit values (all integral, in [0, 255]) or floating point values
// (all in [0, 1]).
type ColorTable [][]float64

// Validate checks the table shape and value domain. A nil or empty table is
// valid and stands for "no table".
func (t ColorTable) Validate() error {
	if len(t) == 0 {
		return nil
	}
	width := len(t[0])
	if width != 3 && width != 4 {
		return &InvalidColorTableError{Reason: "rows must have 3 or 4 components"}
	}
	isFloat := true
	isByte := true
	for _, row := range t {
		if len(row) != width {
			return &InvalidColorTableError{Reason: "rows have inconsistent lengths"}
		}
		for _, v := range row {
			if math.IsNaN(v) {
				return &InvalidColorTableError{Reason: "values must not be NaN"}
			}
			if v < 0 || v > 1 {
				isFloat = false
			}
			if v != math.Trunc(v) || v < 0 || v > 255 {
				isByte = false
			}
		}
	}
	if !isFloat && !isByte {
		return &InvalidColorTableError{
			Reason: "values must either all be integers in [0, 255] or all lie in [0, 1]",
		}
	}
	return nil
}

// Clone returns a deep copy of the table. Cloning nil returns nil.
func (t ColorTable) Clone() ColorTable {
	if t == nil {
		return nil
	}
	out := make(ColorTable, len(t))
	for i, row := range t {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether both tables hold the same values in the same shape.
// Nil and empty tables are equal.
func (t ColorTable) Equal(o ColorTable) bool {
	if len(t) != len(o) {
		return false
	}
	for i, row := range t {
		if len(row) != len(o[i]) {
			return false
		}
		for j, v := range row {
			if v != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Width returns the number of components per row, or 0 for an empty table.
func (t ColorTable) Width() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Colors converts a valid table to standard library colors. Tables whose
// values all lie in [0, 1] are read as floating point and scaled to 8 bits;
// anything else is read as 8-bit values. Rows without an alpha component are
// opaque.
func (t ColorTable) Colors() []color.RGBA {
	if len(t) == 0 {
		return nil
	}
	scale := 1.0
	if t.isFloatDomain() {
		scale = 255.0
	}
	out := make([]color.RGBA, len(t))
	for i, row := range t {
		c := color.RGBA{A: 255}
		c.R = component(row[0], scale)
		c.G = component(row[1], scale)
		c.B = component(row[2], scale)
		if len(row) == 4 {
			c.A = component(row[3], scale)
		}
		out[i] = c
	}
	return out
}

func (t ColorTable) isFloatDomain() bool {
	for _, row := range t {
		for _, v := range row {
			if v < 0 || v > 1 {
				return false
			}
		}
	}
	return true
}

func component(v, scale float64) uint8 {
	scaled := math.Round(v * scale)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// TableFromColors builds an 8-bit RGBA table from standard library colors.
func TableFromColors(colors []color.RGBA) ColorTable {
	if len(colors) == 0 {
		return nil
	}
	out := make(ColorTable, len(colors))
	for i, c := range colors {
		out[i] = []float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
	}
	return out
}
