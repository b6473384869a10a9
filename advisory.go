package datascale

import "fmt"

// AdvisoryKind identifies a non-fatal condition found while computing a
// factor or resolution.
type AdvisoryKind int

const (
	// AdvisoryAxisMismatch: the horizontal and vertical ratios differ, so a
	// mean factor is imprecise on both axes (typically unequal aspect).
	AdvisoryAxisMismatch AdvisoryKind = iota + 1

	// AdvisoryLowResolution: the resolution is below Limits.Low.
	AdvisoryLowResolution

	// AdvisoryHighResolution: the resolution is above Limits.High.
	AdvisoryHighResolution
)

// String returns the advisory kind name.
func (k AdvisoryKind) String() string {
	switch k {
	case AdvisoryAxisMismatch:
		return "AxisMismatch"
	case AdvisoryLowResolution:
		return "LowResolution"
	case AdvisoryHighResolution:
		return "HighResolution"
	default:
		return "Unknown"
	}
}

// Advisory describes a non-fatal condition. The value returned by the
// operation that produced it is unaffected.
//
// For AdvisoryAxisMismatch, Low and High are the smaller and larger axis
// ratios. For the resolution kinds they are the configured limits.
type Advisory struct {
	Kind  AdvisoryKind
	Value float64
	Low   float64
	High  float64
}

// String returns a human-readable description.
func (a Advisory) String() string {
	switch a.Kind {
	case AdvisoryAxisMismatch:
		return fmt.Sprintf("x and y axes are not scaled equally (%g vs %g points per unit), output will not be precise", a.Low, a.High)
	case AdvisoryLowResolution:
		return fmt.Sprintf("output dpi %g is less than %g, figure will be very low resolution", a.Value, a.Low)
	case AdvisoryHighResolution:
		return fmt.Sprintf("output dpi %g is more than %g, figure will be very large", a.Value, a.High)
	default:
		return fmt.Sprintf("advisory %d: value %g", int(a.Kind), a.Value)
	}
}

// AdvisoryHandler receives advisories emitted during a single call.
type AdvisoryHandler func(Advisory)

// advise logs a at warn level and forwards it to the per-call handler.
func (o *options) advise(a Advisory) {
	Logger().Warn("datascale: "+a.String(), "kind", a.Kind.String(), "value", a.Value)
	if o.handler != nil {
		o.handler(a)
	}
}
