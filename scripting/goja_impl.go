package scripting

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dop251/goja"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plotforge/cmapkit/cmap"
)

// GojaEngine runs palette scripts on a goja JavaScript runtime. Like the
// runtime it wraps, an engine must not be used from several goroutines at
// once.
type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	e := &GojaEngine{vm: goja.New()}
	e.registerColorHelpers()
	return e
}

// registerColorHelpers exposes hsl(h, s, l) and hsv(h, s, v) to scripts,
// both returning an [r, g, b] array in [0, 1]. Hue is in degrees.
func (e *GojaEngine) registerColorHelpers() {
	e.vm.Set("hsl", func(h, s, l float64) []float64 {
		c := colorful.Hsl(h, s, l).Clamped()
		return []float64{c.R, c.G, c.B}
	})
	e.vm.Set("hsv", func(h, s, v float64) []float64 {
		c := colorful.Hsv(h, s, v).Clamped()
		return []float64{c.R, c.G, c.B}
	})
}

// GenerateTable evaluates script and samples its palette(t) function n
// times, t spanning [0, 1] inclusive. palette may return [r, g, b] or
// [r, g, b, a] arrays with components in [0, 1], or a hex color string
// ("#rgb", "#rrggbb" or "#rrggbbaa"). The assembled table goes through the
// model's color table validation, so a misbehaving script surfaces as an
// InvalidColorTableError.
//
// Cancelling ctx interrupts the script, including palette functions that
// never return.
func (e *GojaEngine) GenerateTable(ctx context.Context, script string, n int) (cmap.ColorTable, error) {
	if n < 2 {
		return nil, fmt.Errorf("scripting: a color table needs at least 2 entries, got %d", n)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	if _, err := e.vm.RunString(script); err != nil {
		return nil, scriptError(err)
	}
	fn, ok := goja.AssertFunction(e.vm.Get("palette"))
	if !ok {
		return nil, errors.New("scripting: script must define a palette(t) function")
	}

	table := make(cmap.ColorTable, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		v, err := fn(goja.Undefined(), e.vm.ToValue(t))
		if err != nil {
			return nil, scriptError(err)
		}
		row, err := decodeRow(v.Export())
		if err != nil {
			return nil, fmt.Errorf("scripting: palette(%g): %w", t, err)
		}
		table = append(table, row)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("scripting: generated table: %w", err)
	}
	return table, nil
}

func scriptError(err error) error {
	if interruptedErr, ok := err.(*goja.InterruptedError); ok {
		if cause := interruptedErr.Unwrap(); cause != nil {
			return cause
		}
		return context.Canceled
	}
	return err
}

func decodeRow(v interface{}) ([]float64, error) {
	switch r := v.(type) {
	case string:
		return hexRow(r)
	case []interface{}:
		row := make([]float64, len(r))
		for i, raw := range r {
			f, ok := toFloat(raw)
			if !ok {
				return nil, fmt.Errorf("component %d is %T, want a number", i, raw)
			}
			row[i] = f
		}
		return row, nil
	default:
		return nil, fmt.Errorf("returned %T, want a color array or hex string", v)
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
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
