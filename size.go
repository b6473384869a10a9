package datascale

// SizeFromFactor converts a points-per-unit factor into a drawing size.
//
// Stroke returns mult*factor, usable as a line width or a line marker
// size. Marker returns (mult*factor)^2, for primitives sized by area such
// as scatter markers; it is only exact when the marker edge width is 0.
func SizeFromFactor(factor, mult float64, kind DrawKind) (float64, error) {
	switch kind {
	case Stroke:
		return mult * factor, nil
	case Marker:
		v := mult * factor
		return v * v, nil
	default:
		return 0, invalidEnum("draw kind", kind.String(), drawKindNames)
	}
}

// PlotSize returns a line width, marker size or marker area such that the
// drawn element measures WithMultiplier data units on ax.
//
// It must be called after every change to the figure size, axes position
// and limits; the result reflects the geometry at call time only.
//
// Options used: WithAxis, WithMethod, WithMultiplier, WithDrawKind,
// WithTolerance, WithAdvisoryHandler.
func PlotSize(ax Axes, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if !o.kind.Valid() {
		return 0, invalidEnum("draw kind", o.kind.String(), drawKindNames)
	}
	f, err := o.factor(ax)
	if err != nil {
		return 0, err
	}
	return SizeFromFactor(f, o.mult, o.kind)
}
