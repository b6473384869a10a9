package datascale

import (
	"math"
	"strconv"
)

// Option configures a single Factor, PlotSize or PlotDPI call.
// Use functional options to override the defaults.
//
// Example:
//
//	// Linewidth of 1 vertical data unit on the current axes
//	lw, err := datascale.PlotSize(nil)
//
//	// Scatter marker area of 2 horizontal data units
//	s, err := datascale.PlotSize(ax,
//	    datascale.WithAxis(datascale.AxisX),
//	    datascale.WithMultiplier(2),
//	    datascale.WithDrawKind(datascale.Marker))
type Option func(*options)

// options holds the per-call configuration.
type options struct {
	axis    Axis
	method  Method
	mult    float64
	kind    DrawKind
	policy  RangePolicy
	limits  Limits
	rtol    float64
	atol    float64
	handler AdvisoryHandler
}

// Default tolerances for the AxisXY/Mean mismatch check.
const (
	DefaultRelTolerance = 1e-5
	DefaultAbsTolerance = 1e-8
)

// defaultOptions returns the default call options.
func defaultOptions() options {
	return options{
		axis:   AxisY,
		method: Mean,
		mult:   1,
		kind:   Stroke,
		policy: Warn,
		limits: LimitsStandard,
		rtol:   DefaultRelTolerance,
		atol:   DefaultAbsTolerance,
	}
}

func buildOptions(opts []Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.mult) || math.IsInf(o.mult, 0) {
		return nil, &ValidationError{
			Field:  "multiplier",
			Value:  strconv.FormatFloat(o.mult, 'g', -1, 64),
			Reason: "must be finite",
		}
	}
	if o.rtol < 0 || o.atol < 0 || math.IsNaN(o.rtol) || math.IsNaN(o.atol) {
		return nil, &ValidationError{
			Field:  "tolerance",
			Value:  strconv.FormatFloat(o.rtol, 'g', -1, 64) + "/" + strconv.FormatFloat(o.atol, 'g', -1, 64),
			Reason: "must be non-negative",
		}
	}
	return &o, nil
}

// WithAxis selects the axis the factor is taken from. Default AxisY.
func WithAxis(a Axis) Option {
	return func(o *options) {
		o.axis = a
	}
}

// WithMethod selects how AxisXY combines both ratios. Default Mean.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithMultiplier scales the output. For sizes, a multiplier of 0.1 gives
// one tenth of a data unit; for PlotDPI it is the number of pixels per
// data unit. Default 1.
func WithMultiplier(m float64) Option {
	return func(o *options) {
		o.mult = m
	}
}

// WithDrawKind selects the primitive PlotSize computes for. Default Stroke.
func WithDrawKind(k DrawKind) Option {
	return func(o *options) {
		o.kind = k
	}
}

// WithPolicy selects what PlotDPI does outside the limits. Default Warn.
func WithPolicy(p RangePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLimits sets the recommended resolution range used by PlotDPI.
// Default LimitsStandard.
func WithLimits(l Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithTolerance sets the relative and absolute tolerance of the
// AxisXY/Mean mismatch check.
func WithTolerance(rtol, atol float64) Option {
	return func(o *options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// WithAdvisoryHandler installs a callback receiving every advisory of the
// call, in addition to the warn-level log record.
func WithAdvisoryHandler(h AdvisoryHandler) Option {
	return func(o *options) {
		o.handler = h
	}
}
