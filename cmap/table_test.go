package cmap_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/plotforge/cmapkit/cmap"
)

func TestColorTableValidate(t *testing.T) {
	valid := []struct {
		name  string
		table cmap.ColorTable
	}{
		{"nil", nil},
		{"empty", cmap.ColorTable{}},
		{"byte rgb", cmap.ColorTable{{0, 0, 0}, {255, 128, 0}}},
		{"byte rgba", cmap.ColorTable{{0, 0, 0, 255}, {255, 255, 255, 128}}},
		{"float rgb", cmap.ColorTable{{0, 0.5, 1}, {1, 0.25, 0}}},
		{"float rgba", cmap.ColorTable{{0, 0, 0, 1}, {1, 1, 1, 0.5}}},
		{"zeros and ones", cmap.ColorTable{{0, 1, 0}, {1, 0, 1}}},
	}
	for _, tt := range valid {
		t.Run("valid/"+tt.name, func(t *testing.T) {
			if err := tt.table.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}

	invalid := []struct {
		name  string
		table cmap.ColorTable
	}{
		{"two components", cmap.ColorTable{{0, 0}}},
		{"five components", cmap.ColorTable{{0, 0, 0, 0, 0}}},
		{"ragged", cmap.ColorTable{{0, 0, 0}, {0, 0, 0, 0}}},
		{"mixed domains", cmap.ColorTable{{0.5, 0.5, 0.5}, {200, 10, 10}}},
		{"negative", cmap.ColorTable{{-1, 0, 0}}},
		{"above byte range", cmap.ColorTable{{0, 0, 300}}},
		{"fraction above one", cmap.ColorTable{{0, 0, 1.5}}},
		{"nan", cmap.ColorTable{{math.NaN(), 0, 0}}},
	}
	for _, tt := range invalid {
		t.Run("invalid/"+tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			var invalidTable *cmap.InvalidColorTableError
			if !errors.As(err, &invalidTable) {
				t.Errorf("Validate() error = %v, want InvalidColorTableError", err)
			}
		})
	}
}

func TestColorTableClone(t *testing.T) {
	table := cmap.ColorTable{{1, 2, 3}, {4, 5, 6}}
	clone := table.Clone()
	clone[0][0] = 99
	if table[0][0] != 1 {
		t.Error("Clone() shares row storage")
	}
	if cmap.ColorTable(nil).Clone() != nil {
		t.Error("Clone() of nil is not nil")
	}
}

func TestColorTableEqual(t *testing.T) {
	a := cmap.ColorTable{{0, 0, 0}, {255, 255, 255}}
	if !a.Equal(a.Clone()) {
		t.Error("table not Equal to its clone")
	}
	if a.Equal(cmap.ColorTable{{0, 0, 0}}) {
		t.Error("tables of different lengths compare Equal")
	}
	if a.Equal(cmap.ColorTable{{0, 0, 0}, {255, 255, 254}}) {
		t.Error("tables with different values compare Equal")
	}
	if !cmap.ColorTable(nil).Equal(cmap.ColorTable{}) {
		t.Error("nil and empty tables are not Equal")
	}
}

func TestColorTableWidth(t *testing.T) {
	if got := (cmap.ColorTable{{0, 0, 0, 0}}).Width(); got != 4 {
		t.Errorf("Width() = %d, want 4", got)
	}
	if got := (cmap.ColorTable{}).Width(); got != 0 {
		t.Errorf("Width() of empty table = %d, want 0", got)
	}
}

func TestColorTableColors(t *testing.T) {
	byteTable := cmap.ColorTable{{0, 0, 0}, {255, 128, 2}}
	got := byteTable.Colors()
	want := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 128, B: 2, A: 255},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	floatTable := cmap.ColorTable{{0, 0.5, 1, 1}, {1, 0, 0, 0.5}}
	got = floatTable.Colors()
	want = []color.RGBA{
		{R: 0, G: 128, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 128},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if cmap.ColorTable(nil).Colors() != nil {
		t.Error("Colors() of nil table is not nil")
	}
}

func TestTableFromColors(t *testing.T) {
	table := cmap.TableFromColors([]color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 10, G: 20, B: 30, A: 40},
	})
	want := cmap.ColorTable{{0, 0, 0, 255}, {10, 20, 30, 40}}
	if !table.Equal(want) {
		t.Errorf("TableFromColors() = %v, want %v", table, want)
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if cmap.TableFromColors(nil) != nil {
		t.Error("TableFromColors(nil) is not nil")
	}
}
