package datascale

import (
	"math"
)

// Scale holds the rendering points per data unit of both axes.
// It is derived from an Axes on every call and never stored by datascale.
type Scale struct {
	X float64 // points per horizontal data unit
	Y float64 // points per vertical data unit
}

// Measure computes the points-per-data-unit ratios of ax:
//
//	X = 72 * figureWidth  * position.Width  / (xhi - xlo)
//	Y = 72 * figureHeight * position.Height / (yhi - ylo)
//
// A nil ax uses Current. A ratio that is zero, infinite or NaN yields a
// *DegenerateError. Inverted limits produce negative ratios, which are
// returned unchanged.
func Measure(ax Axes) (Scale, error) {
	ax, err := resolve(ax)
	if err != nil {
		return Scale{}, err
	}

	figW, figH := ax.FigureSize()
	pos := ax.Position()
	xlo, xhi := ax.XLim()
	ylo, yhi := ax.YLim()

	s := Scale{
		X: PointsPerInch * figW * pos.Width / (xhi - xlo),
		Y: PointsPerInch * figH * pos.Height / (yhi - ylo),
	}
	if !usable(s.X) {
		return Scale{}, &DegenerateError{Axis: "x", Ratio: s.X}
	}
	if !usable(s.Y) {
		return Scale{}, &DegenerateError{Axis: "y", Ratio: s.Y}
	}

	Logger().Debug("datascale: measured axes",
		"figure_w", figW, "figure_h", figH,
		"box_w", pos.Width, "box_h", pos.Height,
		"x_per_unit", s.X, "y_per_unit", s.Y)
	return s, nil
}

func usable(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Close reports whether X and Y are equal within tolerance, using the
// same rule as numpy.allclose: |X-Y| <= atol + rtol*|Y|.
func (s Scale) Close(rtol, atol float64) bool {
	if s.X == s.Y {
		return true
	}
	return math.Abs(s.X-s.Y) <= atol+rtol*math.Abs(s.Y)
}

// Combine reduces s to a single factor. AxisX and AxisY return the
// respective ratio and ignore method. AxisXY applies method.
//
// Combine does not emit advisories; Factor does.
func (s Scale) Combine(axis Axis, method Method) (float64, error) {
	if !axis.Valid() {
		return 0, invalidEnum("axis", axis.String(), axisNames)
	}
	if !method.Valid() {
		return 0, invalidEnum("method", method.String(), methodNames)
	}

	switch axis {
	case AxisX:
		return s.X, nil
	case AxisY:
		return s.Y, nil
	}

	switch method {
	case Low:
		return math.Min(s.X, s.Y), nil
	case High:
		return math.Max(s.X, s.Y), nil
	default:
		return (s.X + s.Y) / 2, nil
	}
}

// Factor returns the rendering points per data unit of ax.
//
// Options used: WithAxis, WithMethod, WithTolerance, WithAdvisoryHandler.
// When the axis is AxisXY and the method is Mean, an AdvisoryAxisMismatch
// is emitted if the two ratios are not close; the mean is still returned.
func Factor(ax Axes, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	return o.factor(ax)
}

func (o *options) factor(ax Axes) (float64, error) {
	if !o.axis.Valid() {
		return 0, invalidEnum("axis", o.axis.String(), axisNames)
	}
	if !o.method.Valid() {
		return 0, invalidEnum("method", o.method.String(), methodNames)
	}

	s, err := Measure(ax)
	if err != nil {
		return 0, err
	}
	f, err := s.Combine(o.axis, o.method)
	if err != nil {
		return 0, err
	}
	if o.axis == AxisXY && o.method == Mean && !s.Close(o.rtol, o.atol) {
		o.advise(Advisory{Kind: AdvisoryAxisMismatch, Value: f, Low: math.Min(s.X, s.Y), High: math.Max(s.X, s.Y)})
	}
	return f, nil
}
