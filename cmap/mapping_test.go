package cmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/plotforge/cmapkit/cmap"
)

func TestToMapping(t *testing.T) {
	cm := mustNew(t, cmap.Config{
		Name:          cmap.Ptr("gray"),
		Normalization: cmap.Logarithm,
		VMin:          cmap.Ptr(1.0),
	})
	m := cm.ToMapping()

	for _, key := range []string{"name", "colors", "vmin", "vmax", "autoscale", "normalization"} {
		if _, ok := m[key]; !ok {
			t.Errorf("ToMapping() missing key %q", key)
		}
	}
	if m["name"] != "gray" {
		t.Errorf("name = %v, want gray", m["name"])
	}
	if m["colors"] != nil {
		t.Errorf("colors = %v, want nil", m["colors"])
	}
	if m["vmin"] != 1.0 {
		t.Errorf("vmin = %v, want 1", m["vmin"])
	}
	if m["vmax"] != nil {
		t.Errorf("vmax = %v, want nil", m["vmax"])
	}
	if m["autoscale"] != true {
		t.Errorf("autoscale = %v, want true", m["autoscale"])
	}
	if m["normalization"] != "log" {
		t.Errorf("normalization = %v, want log", m["normalization"])
	}
}

func TestToMappingCopiesColors(t *testing.T) {
	cm := mustNew(t, cmap.Config{Colors: grayTable()})
	m := cm.ToMapping()
	table, ok := m["colors"].(cmap.ColorTable)
	if !ok {
		t.Fatalf("colors entry is %T, want ColorTable", m["colors"])
	}
	table[0][0] = 99
	if cm.ColorMapLUT()[0][0] == 99 {
		t.Error("ToMapping shared the internal color table")
	}
}

func TestMappingRoundTrip(t *testing.T) {
	colormaps := []*cmap.Colormap{
		cmap.NewDefault(),
		mustNew(t, cmap.Config{
			Name:          cmap.Ptr("temperature"),
			Normalization: cmap.Logarithm,
			VMin:          cmap.Ptr(1.0),
			VMax:          cmap.Ptr(1000.0),
		}),
		mustNew(t, cmap.Config{Colors: grayTable()}),
		mustNew(t, cmap.Config{VMin: cmap.Ptr(0.25), VMax: cmap.Ptr(0.75)}),
	}
	for _, cm := range colormaps {
		got, err := cmap.FromMapping(cm.ToMapping())
		if err != nil {
			t.Fatalf("FromMapping(ToMapping(%v)) error = %v", cm, err)
		}
		if !got.Equal(cm) {
			t.Errorf("round trip of %v produced %v", cm, got)
		}
	}
}

func TestRoundTripAfterLUTClearsName(t *testing.T) {
	cm := cmap.NewDefault()
	if err := cm.SetColorMapLUT(grayTable(), false); err != nil {
		t.Fatalf("SetColorMapLUT() error = %v", err)
	}
	got, err := cmap.FromMapping(cm.ToMapping())
	if err != nil {
		t.Fatalf("FromMapping() error = %v", err)
	}
	if !got.Equal(cm) {
		t.Errorf("round trip of %v produced %v", cm, got)
	}
	if name, ok := got.Name(); !ok || name != "" {
		t.Errorf("Name() = %q, %v, want empty string kept", name, ok)
	}
}

func TestPartialBoundsDoNotRoundTrip(t *testing.T) {
	// A colormap with a single explicit bound reports autoscale=true in its
	// mapping while carrying that bound, and the autoscale consistency rule
	// rejects exactly that combination on the way back in. The asymmetry is
	// part of the legacy interchange contract.
	cm := mustNew(t, cmap.Config{VMax: cmap.Ptr(0.5)})
	_, err := cmap.FromMapping(cm.ToMapping())
	assertInvalidSpec(t, err, "autoscale")
}

func TestFromMappingAutoscaleTrueWithBound(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{
		"autoscale": true,
		"vmin":      3,
		"name":      "gray",
	})
	assertInvalidSpec(t, err, "autoscale")
}

func TestFromMappingAutoscaleFalseWithoutBounds(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{
		"name":      "gray",
		"autoscale": false,
	})
	assertInvalidSpec(t, err, "autoscale")
}

func TestFromMappingAutoscaleNotBool(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{
		"name":      "gray",
		"autoscale": "yes",
	})
	assertInvalidSpec(t, err, "true or false")
}

func TestFromMappingAutoscaleFalseWithOneBound(t *testing.T) {
	cm, err := cmap.FromMapping(map[string]interface{}{
		"name":      "gray",
		"autoscale": false,
		"vmin":      2,
	})
	if err != nil {
		t.Fatalf("FromMapping() error = %v", err)
	}
	if got := cm.VMin(); got == nil || *got != 2 {
		t.Errorf("VMin() = %v, want 2", got)
	}
}

func TestFromMappingNoNameNoColors(t *testing.T) {
	maps := []map[string]interface{}{
		{"colors": nil, "name": nil},
		{},
		{"normalization": "linear"},
	}
	for _, m := range maps {
		_, err := cmap.FromMapping(m)
		assertInvalidSpec(t, err, "name or a table of colors")
	}
}

func TestFromMappingNameColorsPrecedesNormalizationCheck(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{
		"name":          nil,
		"colors":        nil,
		"normalization": "density",
	})
	assertInvalidSpec(t, err, "name or a table of colors")
}

func TestFromMappingUnknownNormalization(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{
		"name":          "gray",
		"normalization": "density",
	})
	assertInvalidSpec(t, err, "not recognized")
}

func TestFromMappingMissingNormalizationDefaultsToLinear(t *testing.T) {
	capture := withCaptureLogger(t)
	cm, err := cmap.FromMapping(map[string]interface{}{"name": "gray"})
	if err != nil {
		t.Fatalf("FromMapping() error = %v", err)
	}
	if cm.Normalization() != cmap.Linear {
		t.Errorf("Normalization() = %v, want Linear", cm.Normalization())
	}
	if len(capture.warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", capture.warnings)
	}
}

func TestFromMappingNameWrongType(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{"name": 5})
	assertInvalidSpec(t, err, "name must be a string")
}

func TestFromMappingBoundWrongType(t *testing.T) {
	_, err := cmap.FromMapping(map[string]interface{}{"name": "gray", "vmin": "low"})
	assertInvalidSpec(t, err, "vmin must be a number")
}

func TestFromMappingNumericCoercion(t *testing.T) {
	cm, err := cmap.FromMapping(map[string]interface{}{
		"name": "gray",
		"vmin": int64(3),
		"vmax": float32(7.5),
	})
	if err != nil {
		t.Fatalf("FromMapping() error = %v", err)
	}
	if got := cm.VMin(); got == nil || *got != 3 {
		t.Errorf("VMin() = %v, want 3", got)
	}
	if got := cm.VMax(); got == nil || *got != 7.5 {
		t.Errorf("VMax() = %v, want 7.5", got)
	}
}

func TestFromMappingDecodesUntypedRows(t *testing.T) {
	cm, err := cmap.FromMapping(map[string]interface{}{
		"colors": []interface{}{
			[]interface{}{int64(0), int64(0), int64(0)},
			[]interface{}{255, 255, 255},
		},
	})
	if err != nil {
		t.Fatalf("FromMapping() error = %v", err)
	}
	want := cmap.ColorTable{{0, 0, 0}, {255, 255, 255}}
	if got := cm.ColorMapLUT(); !got.Equal(want) {
		t.Errorf("ColorMapLUT() = %v, want %v", got, want)
	}
	if _, ok := cm.Name(); ok {
		t.Error("colors-only mapping produced a named colormap")
	}
}

func TestFromMappingBadColors(t *testing.T) {
	maps := []map[string]interface{}{
		{"colors": "gradient"},
		{"colors": []interface{}{"black"}},
		{"colors": []interface{}{[]interface{}{0, 0, "x"}}},
		{"colors": cmap.ColorTable{{0, 0}, {1, 1}}},
	}
	for _, m := range maps {
		_, err := cmap.FromMapping(m)
		var invalid *cmap.InvalidColorTableError
		if !errors.As(err, &invalid) {
			t.Errorf("FromMapping(%v) error = %v, want InvalidColorTableError", m, err)
		}
	}
}

func TestSetFromMappingEmitsOnce(t *testing.T) {
	cm := cmap.NewDefault()
	calls := 0
	cm.Changed().Subscribe(func() { calls++ })

	err := cm.SetFromMapping(map[string]interface{}{
		"name":          "blue",
		"normalization": "log",
		"vmin":          1.0,
		"vmax":          100.0,
	})
	if err != nil {
		t.Fatalf("SetFromMapping() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("SetFromMapping emitted %d notifications, want 1", calls)
	}
	if name, _ := cm.Name(); name != "blue" {
		t.Errorf("Name() = %q, want blue", name)
	}
	if cm.Normalization() != cmap.Logarithm {
		t.Errorf("Normalization() = %v, want Logarithm", cm.Normalization())
	}
}

func TestSetFromMappingFailureLeavesStateAlone(t *testing.T) {
	cm := mustNew(t, cmap.Config{
		Name:          cmap.Ptr("temperature"),
		Normalization: cmap.Logarithm,
		VMin:          cmap.Ptr(2.0),
	})
	calls := 0
	cm.Changed().Subscribe(func() { calls++ })

	err := cm.SetFromMapping(map[string]interface{}{
		"name":      "gray",
		"autoscale": true,
		"vmin":      3.0,
	})
	assertInvalidSpec(t, err, "autoscale")

	if calls != 0 {
		t.Errorf("failed SetFromMapping emitted %d notifications", calls)
	}
	if name, _ := cm.Name(); name != "temperature" {
		t.Errorf("Name() = %q, want temperature untouched", name)
	}
	if cm.Normalization() != cmap.Logarithm {
		t.Error("failed SetFromMapping changed the normalization")
	}
	if got := cm.VMin(); got == nil || *got != 2 {
		t.Errorf("VMin() = %v, want 2 untouched", got)
	}
}

func assertInvalidSpec(t *testing.T, err error, fragment string) {
	t.Helper()
	var invalid *cmap.InvalidSpecError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidSpecError", err)
	}
	if !strings.Contains(invalid.Reason, fragment) {
		t.Errorf("reason %q missing %q", invalid.Reason, fragment)
	}
}
