package datascale

import (
	"errors"
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		ax    stubAxes
		wantX float64
		wantY float64
	}{
		{"full box", testAxes(6, 4.5, 0, 5, 0, 12), 72 * 6.0 / 5, 27},
		{"unit square", testAxes(1, 1, 0, 1, 0, 1), 72, 72},
		{"offset limits", testAxes(2, 2, 10, 12, -1, 1), 72, 72},
		{"inverted y", testAxes(1, 1, 0, 1, 1, 0), 72, -72},
		{
			"partial box",
			stubAxes{figW: 6.4, figH: 4.8, pos: Bounds{X0: 0.125, Y0: 0.11, Width: 0.775, Height: 0.77}, xlo: 0, xhi: 1, ylo: 0, yhi: 1},
			72 * 6.4 * 0.775,
			72 * 4.8 * 0.77,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Measure(tt.ax)
			if err != nil {
				t.Fatalf("Measure() error = %v", err)
			}
			if !approx(s.X, tt.wantX, 1e-12) || !approx(s.Y, tt.wantY, 1e-12) {
				t.Errorf("Measure() = %+v, want {X:%v Y:%v}", s, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMeasureDegenerate(t *testing.T) {
	tests := []struct {
		name string
		ax   stubAxes
		axis string
	}{
		{"empty x range", testAxes(6, 4, 3, 3, 0, 1), "x"},
		{"empty y range", testAxes(6, 4, 0, 1, 2, 2), "y"},
		{"zero width box", stubAxes{figW: 6, figH: 4, pos: Bounds{Width: 0, Height: 1}, xhi: 1, yhi: 1}, "x"},
		{"zero height figure", testAxes(6, 0, 0, 1, 0, 1), "y"},
		{"nan limit", testAxes(6, 4, 0, math.NaN(), 0, 1), "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Measure(tt.ax)
			if !errors.Is(err, ErrDegenerateAxes) {
				t.Fatalf("Measure() error = %v, want ErrDegenerateAxes", err)
			}
			var de *DegenerateError
			if !errors.As(err, &de) || de.Axis != tt.axis {
				t.Errorf("Measure() error = %#v, want axis %q", err, tt.axis)
			}
		})
	}
}

func TestFactorSingleAxis(t *testing.T) {
	ax := testAxes(6, 4.5, 0, 5, 0, 12)

	y, err := Factor(ax)
	if err != nil {
		t.Fatalf("Factor() error = %v", err)
	}
	if !approx(y, 27, 1e-12) {
		t.Errorf("Factor(y) = %v, want 27", y)
	}

	x, err := Factor(ax, WithAxis(AxisX))
	if err != nil {
		t.Fatalf("Factor(x) error = %v", err)
	}
	if !approx(x, 86.4, 1e-12) {
		t.Errorf("Factor(x) = %v, want 86.4", x)
	}
}

func TestFactorCombinedEqualScaling(t *testing.T) {
	geometries := []stubAxes{
		testAxes(4, 4, 0, 100, 0, 100),
		testAxes(6, 3, 0, 20, -5, 5),
		testAxes(1, 2, 0, 0.5, 0, 1),
	}
	for _, ax := range geometries {
		s, err := Measure(ax)
		if err != nil {
			t.Fatalf("Measure(%+v) error = %v", ax, err)
		}
		for _, m := range []Method{Mean, Low, High} {
			var advisories int
			got, err := Factor(ax, WithAxis(AxisXY), WithMethod(m),
				WithAdvisoryHandler(func(Advisory) { advisories++ }))
			if err != nil {
				t.Fatalf("Factor(xy, %v) error = %v", m, err)
			}
			if !approx(got, s.Y, 1e-12) {
				t.Errorf("Factor(xy, %v) = %v, want %v", m, got, s.Y)
			}
			if advisories != 0 {
				t.Errorf("Factor(xy, %v) emitted %d advisories for equal scaling", m, advisories)
			}
		}
	}
}

func TestFactorCombinedUnequalScaling(t *testing.T) {
	ax := testAxes(6, 4.5, 0, 5, 0, 12) // x 86.4, y 27

	tests := []struct {
		method     Method
		want       float64
		advisories int
	}{
		{Mean, (86.4 + 27) / 2, 1},
		{Low, 27, 0},
		{High, 86.4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			var got []Advisory
			f, err := Factor(ax, WithAxis(AxisXY), WithMethod(tt.method),
				WithAdvisoryHandler(func(a Advisory) { got = append(got, a) }))
			if err != nil {
				t.Fatalf("Factor() error = %v", err)
			}
			if !approx(f, tt.want, 1e-12) {
				t.Errorf("Factor() = %v, want %v", f, tt.want)
			}
			if len(got) != tt.advisories {
				t.Fatalf("got %d advisories, want %d", len(got), tt.advisories)
			}
			if tt.advisories == 1 {
				a := got[0]
				if a.Kind != AdvisoryAxisMismatch || !approx(a.Low, 27, 1e-12) || !approx(a.High, 86.4, 1e-12) {
					t.Errorf("advisory = %+v, want AxisMismatch 27/86.4", a)
				}
			}
		})
	}
}

func TestFactorToleranceSuppressesMismatch(t *testing.T) {
	// 72 vs 72.0000072: within the default allclose tolerance.
	ax := stubAxes{figW: 1, figH: 1.0000001, pos: Full, xhi: 1, yhi: 1}
	var n int
	h := WithAdvisoryHandler(func(Advisory) { n++ })

	if _, err := Factor(ax, WithAxis(AxisXY), h); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("default tolerance: got %d advisories, want 0", n)
	}

	if _, err := Factor(ax, WithAxis(AxisXY), WithTolerance(0, 0), h); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("zero tolerance: got %d advisories, want 1", n)
	}
}

func TestScaleCombine(t *testing.T) {
	s := Scale{X: 10, Y: 30}
	tests := []struct {
		axis   Axis
		method Method
		want   float64
	}{
		{AxisX, Mean, 10},
		{AxisY, High, 30},
		{AxisXY, Mean, 20},
		{AxisXY, Low, 10},
		{AxisXY, High, 30},
	}
	for _, tt := range tests {
		got, err := s.Combine(tt.axis, tt.method)
		if err != nil {
			t.Fatalf("Combine(%v, %v) error = %v", tt.axis, tt.method, err)
		}
		if got != tt.want {
			t.Errorf("Combine(%v, %v) = %v, want %v", tt.axis, tt.method, got, tt.want)
		}
	}
}

func TestFactorInvalidEnums(t *testing.T) {
	ax := testAxes(6, 4.5, 0, 5, 0, 12)
	tests := []struct {
		name  string
		opt   Option
		value string
	}{
		{"axis", WithAxis(Axis(7)), "Axis(7)"},
		{"method", WithMethod(Method(-1)), "Method(-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Factor(ax, tt.opt)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Factor() error = %v, want ErrInvalidInput", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Value != tt.value {
				t.Errorf("Factor() error = %v, want value %q", err, tt.value)
			}
		})
	}
}

func BenchmarkFactor(b *testing.B) {
	ax := testAxes(6, 4.5, 0, 5, 0, 12)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Factor(ax, WithAxis(AxisXY), WithMethod(High))
	}
}
