package datascale

import (
	"fmt"
	"math"
	"strconv"
)

// Limits is the recommended output resolution range, in dots per inch.
type Limits struct {
	Low  float64
	High float64
}

// Both resolution ranges in use. Neither is more correct than the other;
// callers pick one with WithLimits or supply their own.
var (
	// LimitsStandard accepts 100 to 1000 dpi. It is the default.
	LimitsStandard = Limits{Low: 100, High: 1000}

	// LimitsFine accepts 150 to 1000 dpi.
	LimitsFine = Limits{Low: 150, High: 1000}
)

// Validate reports whether l is a usable, finite, positive range.
func (l Limits) Validate() error {
	bad := func(reason string) error {
		return &ValidationError{Field: "limits", Value: l.String(), Reason: reason}
	}
	switch {
	case math.IsNaN(l.Low) || math.IsNaN(l.High) || math.IsInf(l.Low, 0) || math.IsInf(l.High, 0):
		return bad("bounds must be finite")
	case l.Low <= 0:
		return bad("low bound must be positive")
	case l.Low > l.High:
		return bad("low bound exceeds high bound")
	}
	return nil
}

// Contains reports whether v lies within [Low, High].
func (l Limits) Contains(v float64) bool {
	return v >= l.Low && v <= l.High
}

// Clamp returns v restricted to [Low, High].
func (l Limits) Clamp(v float64) float64 {
	return math.Min(math.Max(v, l.Low), l.High)
}

// String returns "low/high".
func (l Limits) String() string {
	return fmt.Sprintf("%g/%g", l.Low, l.High)
}

// DPIFromFactor converts a points-per-unit factor into an output
// resolution at which one data unit spans mult pixels:
//
//	dpi = mult * 72 / factor
//
// Under Warn the raw value is returned, with a non-nil Advisory when it
// lies outside lim. Under Auto the value is clamped into lim and no
// advisory is produced.
func DPIFromFactor(factor, mult float64, policy RangePolicy, lim Limits) (float64, *Advisory, error) {
	if !policy.Valid() {
		return 0, nil, invalidEnum("range policy", policy.String(), policyNames)
	}
	if err := lim.Validate(); err != nil {
		return 0, nil, err
	}
	if !usable(factor) {
		return 0, nil, &ValidationError{
			Field:  "factor",
			Value:  strconv.FormatFloat(factor, 'g', -1, 64),
			Reason: "must be finite and non-zero",
		}
	}

	dpi := mult * PointsPerInch / factor
	if policy == Auto {
		return lim.Clamp(dpi), nil, nil
	}

	switch {
	case dpi < lim.Low:
		return dpi, &Advisory{Kind: AdvisoryLowResolution, Value: dpi, Low: lim.Low, High: lim.High}, nil
	case dpi > lim.High:
		return dpi, &Advisory{Kind: AdvisoryHighResolution, Value: dpi, Low: lim.Low, High: lim.High}, nil
	}
	return dpi, nil, nil
}

// PlotDPI returns the output resolution at which one data unit of ax spans
// WithMultiplier pixels.
//
// Options used: WithAxis, WithMethod, WithMultiplier, WithPolicy,
// WithLimits, WithTolerance, WithAdvisoryHandler.
func PlotDPI(ax Axes, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if !o.policy.Valid() {
		return 0, invalidEnum("range policy", o.policy.String(), policyNames)
	}
	if err := o.limits.Validate(); err != nil {
		return 0, err
	}

	f, err := o.factor(ax)
	if err != nil {
		return 0, err
	}
	dpi, adv, err := DPIFromFactor(f, o.mult, o.policy, o.limits)
	if err != nil {
		return 0, err
	}
	if adv != nil {
		o.advise(*adv)
	}
	return dpi, nil
}
