// Package scripting generates custom color tables from palette scripts: a
// narrow engine interface with a JavaScript implementation behind it, for
// tooling that lets users define colormaps programmatically instead of
// shipping static tables.
package scripting

import (
	"context"

	"github.com/plotforge/cmapkit/cmap"
)

// Engine evaluates palette scripts into color tables.
type Engine interface {
	// GenerateTable runs script, which must define a function palette(t),
	// and samples it n times with t spanning [0, 1] to assemble a color
	// table. The table is validated before it is returned.
	GenerateTable(ctx context.Context, script string, n int) (cmap.ColorTable, error)
}
