package datascale

import "strconv"

// Axis selects which axis the scale factor is taken from.
type Axis int

const (
	// AxisY uses the vertical axis. It is the default.
	AxisY Axis = iota

	// AxisX uses the horizontal axis.
	AxisX

	// AxisXY combines both axes according to a Method.
	AxisXY
)

var axisNames = []string{"y", "x", "xy"}

// String returns the axis name as accepted by ParseAxis.
func (a Axis) String() string {
	if !a.Valid() {
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
	return axisNames[a]
}

// Valid reports whether a is one of the declared axis values.
func (a Axis) Valid() bool {
	return a >= 0 && int(a) < len(axisNames)
}

// ParseAxis parses "y", "x" or "xy".
func ParseAxis(s string) (Axis, error) {
	i, err := lookup("axis", s, axisNames)
	return Axis(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, invalidEnum("axis", a.String(), axisNames)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	v, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Method combines the two single-axis ratios when the axis is AxisXY.
type Method int

const (
	// Mean averages both ratios and warns when they differ.
	Mean Method = iota

	// Low takes the smaller ratio.
	Low

	// High takes the larger ratio.
	High
)

var methodNames = []string{"mean", "low", "high"}

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	if !m.Valid() {
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
	return methodNames[m]
}

// Valid reports whether m is one of the declared methods.
func (m Method) Valid() bool {
	return m >= 0 && int(m) < len(methodNames)
}

// ParseMethod parses "mean", "low" or "high".
func ParseMethod(s string) (Method, error) {
	i, err := lookup("method", s, methodNames)
	return Method(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, invalidEnum("method", m.String(), methodNames)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// DrawKind is the drawing primitive a size is computed for.
//
// Stroke sizes scale linearly (line widths, line marker sizes).
// Marker sizes scale with the square, matching primitives whose size
// parameter is an area. The squared form is only exact when the marker
// is drawn without an edge stroke.
type DrawKind int

const (
	// Stroke is a linear size: line width or line marker diameter.
	Stroke DrawKind = iota

	// Marker is a filled marker sized by area.
	Marker
)

var drawKindNames = []string{"line", "scatter"}

// String returns the kind name as accepted by ParseDrawKind.
func (k DrawKind) String() string {
	if !k.Valid() {
		return "DrawKind(" + strconv.Itoa(int(k)) + ")"
	}
	return drawKindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k DrawKind) Valid() bool {
	return k >= 0 && int(k) < len(drawKindNames)
}

// ParseDrawKind parses "line" or "scatter".
func ParseDrawKind(s string) (DrawKind, error) {
	i, err := lookup("draw kind", s, drawKindNames)
	return DrawKind(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (k DrawKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, invalidEnum("draw kind", k.String(), drawKindNames)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DrawKind) UnmarshalText(text []byte) error {
	v, err := ParseDrawKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// RangePolicy decides what happens when a computed resolution falls
// outside the configured Limits.
type RangePolicy int

const (
	// Warn returns the raw value and emits an advisory.
	Warn RangePolicy = iota

	// Auto clamps the value into the limits silently.
	Auto
)

var policyNames = []string{"warn", "auto"}

// String returns the policy name as accepted by ParseRangePolicy.
func (p RangePolicy) String() string {
	if !p.Valid() {
		return "RangePolicy(" + strconv.Itoa(int(p)) + ")"
	}
	return policyNames[p]
}

// Valid reports whether p is one of the declared policies.
func (p RangePolicy) Valid() bool {
	return p >= 0 && int(p) < len(policyNames)
}

// ParseRangePolicy parses "warn" or "auto".
func ParseRangePolicy(s string) (RangePolicy, error) {
	i, err := lookup("range policy", s, policyNames)
	return RangePolicy(i), err
}

// MarshalText implements encoding.TextMarshaler.
func (p RangePolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, invalidEnum("range policy", p.String(), policyNames)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *RangePolicy) UnmarshalText(text []byte) error {
	v, err := ParseRangePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func lookup(field, s string, names []string) (int, error) {
	for i, n := range names {
		if s == n {
			return i, nil
		}
	}
	return 0, invalidEnum(field, s, names)
}

func invalidEnum(field, value string, names []string) error {
	allowed := make([]string, len(names))
	copy(allowed, names)
	return &ValidationError{Field: field, Value: value, Allowed: allowed}
}
