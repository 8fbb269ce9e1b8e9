// Package palette holds the process-wide registry of named colormaps. Each
// entry binds a colormap name to the stable identifier render backends use
// to select their program, plus reference gradient stops for UI layers that
// preview the map. The registry is populated at startup and immutable
// afterwards; lookups for unknown names fail explicitly instead of falling
// back to a default.
package palette

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Definition describes one registered colormap.
type Definition struct {
	// Name is the registry key.
	Name string
	// ProgramID is the identifier render backends use to pick the matching
	// program. IDs are stable across processes; they are part of the
	// interchange surface.
	ProgramID int
	// Stops are the reference gradient colors, darkest first. The registry
	// only carries them; interpolating between stops is a renderer concern.
	Stops []color.RGBA
}

// UnsupportedNameError reports a lookup for a name the registry does not
// hold.
type UnsupportedNameError struct {
	Name string
}

func (e *UnsupportedNameError) Error() string {
	return fmt.Sprintf("palette: unsupported colormap %q", e.Name)
}

// The built-in maps. "green" uses the full-intensity green the SVG name set
// calls lime; colornames.Green is the half-intensity web green.
var registry = []Definition{
	{Name: "gray", ProgramID: 0, Stops: []color.RGBA{colornames.Black, colornames.White}},
	{Name: "reversed gray", ProgramID: 1, Stops: []color.RGBA{colornames.White, colornames.Black}},
	{Name: "red", ProgramID: 2, Stops: []color.RGBA{colornames.Black, colornames.Red}},
	{Name: "green", ProgramID: 3, Stops: []color.RGBA{colornames.Black, colornames.Lime}},
	{Name: "blue", ProgramID: 4, Stops: []color.RGBA{colornames.Black, colornames.Blue}},
	{Name: "temperature", ProgramID: 5, Stops: []color.RGBA{
		colornames.Blue, colornames.Cyan, colornames.Lime, colornames.Yellow, colornames.Red,
	}},
}

var byName = buildIndex()

func buildIndex() map[string]int {
	m := make(map[string]int, len(registry))
	for i, d := range registry {
		m[d.Name] = i
	}
	return m
}

// Lookup returns the definition registered under name. The returned stops
// are a copy; callers may modify them freely.
func Lookup(name string) (Definition, error) {
	i, ok := byName[name]
	if !ok {
		return Definition{}, &UnsupportedNameError{Name: name}
	}
	return registry[i].clone(), nil
}

// IsSupported reports whether name is registered.
func IsSupported(name string) bool {
	_, ok := byName[name]
	return ok
}

// Supported returns the registered names in registration order.
func Supported() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}

// Definitions returns a copy of every registered definition, in
// registration order.
func Definitions() []Definition {
	out := make([]Definition, len(registry))
	for i, d := range registry {
		out[i] = d.clone()
	}
	return out
}

func (d Definition) clone() Definition {
	stops := make([]color.RGBA, len(d.Stops))
	copy(stops, d.Stops)
	d.Stops = stops
	return d
}
