package datascale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("datascale: invalid input")

	// ErrDegenerateAxes is matched by every *DegenerateError.
	ErrDegenerateAxes = errors.New("datascale: degenerate axes geometry")

	// ErrNoCurrentAxes is returned when a nil Axes is passed and no
	// current axes has been set with SetCurrent.
	ErrNoCurrentAxes = errors.New("datascale: no current axes")
)

// ValidationError reports a parameter value outside its allowed set.
type ValidationError struct {
	Field   string   // parameter name, e.g. "axis"
	Value   string   // offending value as given
	Allowed []string // accepted values, empty for numeric checks
	Reason  string   // free-form detail for numeric checks
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "datascale: invalid %s %q", e.Field, e.Value)
	switch {
	case len(e.Allowed) > 0:
		fmt.Fprintf(&b, " (want one of %s)", strings.Join(e.Allowed, ", "))
	case e.Reason != "":
		fmt.Fprintf(&b, " (%s)", e.Reason)
	}
	return b.String()
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DegenerateError reports an axis whose points-per-unit ratio is zero,
// infinite or NaN: a zero-size axes box or an empty data range.
type DegenerateError struct {
	Axis  string // "x" or "y"
	Ratio float64
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("datascale: %s axis has no usable scale (points per unit = %v)", e.Axis, e.Ratio)
}

// Is reports whether target is ErrDegenerateAxes.
func (e *DegenerateError) Is(target error) bool {
	return target == ErrDegenerateAxes
}
