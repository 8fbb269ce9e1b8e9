package cmap

import (
	"fmt"

	"github.com/plotforge/cmapkit/stats"
)

// Range computes the effective display bounds for data mapped through the
// colormap. Explicit bounds always win. A missing bound comes from the data
// statistics when data is given, otherwise from the normalization defaults
// (0 and 1 for Linear, 1 and 10 for Logarithm).
//
// With logarithmic normalization and data present, a bound that resolved to
// a negative value is replaced by the smallest strictly positive sample; if
// the data holds no positive sample the computation fails with
// NoPositiveDataError. NaN samples are ignored; data made only of NaN is
// rejected.
//
// Range reads the colormap and data without mutating either. The data slice
// must stay stable for the duration of the single statistics pass.
func (c *Colormap) Range(data []float64) (vmin, vmax float64, err error) {
	var st stats.Result
	hasData := len(data) > 0
	if hasData {
		st, err = stats.MinMax(data, true)
		if err != nil {
			return 0, 0, fmt.Errorf("colormap range: %w", err)
		}
	}

	switch {
	case c.vmin != nil:
		vmin = *c.vmin
	case hasData:
		vmin = st.Minimum
	default:
		vmin = c.norm.defaultMin()
	}
	switch {
	case c.vmax != nil:
		vmax = *c.vmax
	case hasData:
		vmax = st.Maximum
	default:
		vmax = c.norm.defaultMax()
	}

	if hasData && c.norm == Logarithm {
		if vmin < 0 {
			if !st.HasMinPositive {
				return 0, 0, &NoPositiveDataError{}
			}
			vmin = st.MinPositive
		}
		if vmax < 0 {
			if !st.HasMinPositive {
				return 0, 0, &NoPositiveDataError{}
			}
			vmax = st.MinPositive
		}
	}
	return vmin, vmax, nil
}
