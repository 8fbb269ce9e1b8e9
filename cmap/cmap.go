// Package cmap provides the colormap model: a named or custom-color map,
// its normalization family, optional explicit display bounds, and the range
// policy reconciling them with data statistics.
//
// The model is a pure data/policy object with no rendering and no file or
// network surface. It expects a single logical owner, typically one UI
// goroutine. Every mutation notifies the Changed signal exactly once,
// synchronously.
package cmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plotforge/cmapkit/observability"
	"github.com/plotforge/cmapkit/palette"
	"github.com/plotforge/cmapkit/signal"
)

// DefaultName is the colormap selected when a Config names neither a
// colormap nor a color table.
const DefaultName = "gray"

var logger observability.Logger = observability.NopLogger{}

// SetLogger routes the package's warnings (corrected logarithmic bounds,
// defaulted normalization) to l. The default discards them. Set it once at
// program start; it is not synchronized.
func SetLogger(l observability.Logger) {
	if l == nil {
		logger = observability.NopLogger{}
		return
	}
	logger = l
}

// Ptr returns a pointer to v, typically for Config literals and bound
// arguments: cmap.Ptr(0.5), cmap.Ptr("gray").
func Ptr[T any](v T) *T {
	return &v
}

// Config describes a colormap to construct. The zero value yields the
// default colormap: "gray", linear, both bounds autoscaled.
type Config struct {
	// Name identifies a registered colormap. nil together with a non-empty
	// Colors selects a custom-color map; nil with no Colors falls back to
	// DefaultName. When both Name and Colors are given both are stored;
	// consumers resolve the name and only use the table when the name is
	// absent.
	Name *string
	// Colors is an explicit color table defining a custom colormap.
	Colors ColorTable
	// Normalization defaults to Linear when empty.
	Normalization Normalization
	// VMin and VMax are explicit display bounds; nil means "autoscale this
	// bound from data".
	VMin *float64
	VMax *float64
}

// Colormap is the mutable colormap model. Use New or NewDefault to build
// one; the zero value is not valid.
type Colormap struct {
	name    *string
	colors  ColorTable
	norm    Normalization
	vmin    *float64
	vmax    *float64
	changed signal.Signal
}

// New builds a Colormap from cfg. An unrecognized normalization fails with
// UnsupportedNormalizationError and an invalid color table with
// InvalidColorTableError.
//
// Logarithmic bounds below 1 are not an error: both bounds reset to
// autoscale and a warning is logged.
func New(cfg Config) (*Colormap, error) {
	norm := cfg.Normalization
	if norm == "" {
		norm = Linear
	}
	if !norm.valid() {
		return nil, &UnsupportedNormalizationError{Normalization: string(norm)}
	}
	if err := cfg.Colors.Validate(); err != nil {
		return nil, err
	}

	vmin := copyBound(cfg.VMin)
	vmax := copyBound(cfg.VMax)
	if norm == Logarithm && (belowOne(vmin) || belowOne(vmax)) {
		logger.Warn("unsupported bounds for a log scale, autoscale will be performed",
			observability.String("vmin", boundString(vmin)),
			observability.String("vmax", boundString(vmax)))
		vmin = nil
		vmax = nil
	}

	name := copyName(cfg.Name)
	colors := cfg.Colors.Clone()
	if len(colors) == 0 {
		colors = nil
	}
	if name == nil && colors == nil {
		name = Ptr(DefaultName)
	}
	return &Colormap{name: name, colors: colors, norm: norm, vmin: vmin, vmax: vmax}, nil
}

// NewDefault returns the default colormap: "gray", linear, autoscale.
func NewDefault() *Colormap {
	return &Colormap{name: Ptr(DefaultName), norm: Linear}
}

// Changed exposes the mutation notification signal. Each setter emits
// exactly once, synchronously, after its fields are written.
func (c *Colormap) Changed() *signal.Signal {
	return &c.changed
}

// Name returns the colormap name. ok is false for custom-color maps
// constructed without a name; note that a name cleared by SetColorMapLUT is
// the empty string, not absent.
func (c *Colormap) Name() (name string, ok bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

// SetName selects a named colormap and drops any custom color table.
func (c *Colormap) SetName(name string) {
	c.name = &name
	c.colors = nil
	c.changed.Emit()
}

// ColorMapLUT returns a deep copy of the custom color table, or nil when the
// colormap has none.
func (c *Colormap) ColorMapLUT() ColorTable {
	return c.colors.Clone()
}

// SetColorMapLUT installs colors as the custom color table; an empty table
// clears it. Unless keepName is set the name is reset to the empty string so
// the table alone defines the map; keeping the name of a known colormap next
// to a diverging table is the caller's risk. An invalid table fails with
// InvalidColorTableError and leaves the colormap untouched.
func (c *Colormap) SetColorMapLUT(colors ColorTable, keepName bool) error {
	if err := colors.Validate(); err != nil {
		return err
	}
	table := colors.Clone()
	if len(table) == 0 {
		table = nil
	}
	c.colors = table
	if !keepName {
		c.name = Ptr("")
	}
	c.changed.Emit()
	return nil
}

// Normalization returns the active normalization family.
func (c *Colormap) Normalization() Normalization {
	return c.norm
}

// SetNormalization switches between Linear and Logarithm. Anything else
// fails with UnsupportedNormalizationError without mutating the colormap.
func (c *Colormap) SetNormalization(n Normalization) error {
	if !n.valid() {
		return &UnsupportedNormalizationError{Normalization: string(n)}
	}
	c.norm = n
	c.changed.Emit()
	return nil
}

// VMin returns the explicit lower bound, or nil when it autoscales.
func (c *Colormap) VMin() *float64 {
	return copyBound(c.vmin)
}

// SetVMin sets the explicit lower bound; nil restores autoscale.
func (c *Colormap) SetVMin(v *float64) {
	c.vmin = copyBound(v)
	c.changed.Emit()
}

// VMax returns the explicit upper bound, or nil when it autoscales.
func (c *Colormap) VMax() *float64 {
	return copyBound(c.vmax)
}

// SetVMax sets the explicit upper bound; nil restores autoscale.
func (c *Colormap) SetVMax(v *float64) {
	c.vmax = copyBound(v)
	c.changed.Emit()
}

// SetVMinVMax replaces both bounds with a single change notification.
func (c *Colormap) SetVMinVMax(vmin, vmax *float64) {
	c.vmin = copyBound(vmin)
	c.vmax = copyBound(vmax)
	c.changed.Emit()
}

// IsAutoscale reports whether at least one bound is derived from data.
func (c *Colormap) IsAutoscale() bool {
	return c.vmin == nil || c.vmax == nil
}

// Copy returns an independent colormap with the same fields. Observers are
// not carried over; the copy starts with a fresh Changed signal.
func (c *Colormap) Copy() *Colormap {
	return &Colormap{
		name:   copyName(c.name),
		colors: c.colors.Clone(),
		norm:   c.norm,
		vmin:   copyBound(c.vmin),
		vmax:   copyBound(c.vmax),
	}
}

// Equal compares by value, not identity: name, normalization, both bounds
// and the color table contents must all match.
func (c *Colormap) Equal(o *Colormap) bool {
	if c == nil || o == nil {
		return c == o
	}
	return eqName(c.name, o.name) &&
		c.norm == o.norm &&
		eqBound(c.vmin, o.vmin) &&
		eqBound(c.vmax, o.vmax) &&
		c.colors.Equal(o.colors)
}

// String renders the colormap state for logs and errors.
func (c *Colormap) String() string {
	var b strings.Builder
	b.WriteString("Colormap{name: ")
	if c.name == nil {
		b.WriteString("none")
	} else {
		fmt.Fprintf(&b, "%q", *c.name)
	}
	b.WriteString(", colors: ")
	if c.colors == nil {
		b.WriteString("none")
	} else {
		fmt.Fprintf(&b, "%dx%d table", len(c.colors), c.colors.Width())
	}
	fmt.Fprintf(&b, ", normalization: %s, vmin: %s, vmax: %s}",
		c.norm, boundString(c.vmin), boundString(c.vmax))
	return b.String()
}

// SupportedColormaps returns the names the process-wide palette registry
// holds, in registration order.
func SupportedColormaps() []string {
	return palette.Supported()
}

func copyBound(v *float64) *float64 {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

func copyName(v *string) *string {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func eqBound(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqName(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func belowOne(v *float64) bool {
	return v != nil && *v < 1.0
}

func boundString(v *float64) string {
	if v == nil {
		return "auto"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
