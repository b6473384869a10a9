package datascale

import (
	"errors"
	"math"
	"testing"
)

// stubAxes is a fixed Axes geometry.
type stubAxes struct {
	figW, figH float64
	pos        Bounds
	xlo, xhi   float64
	ylo, yhi   float64
}

func (a stubAxes) FigureSize() (float64, float64) { return a.figW, a.figH }
func (a stubAxes) Position() Bounds               { return a.pos }
func (a stubAxes) XLim() (float64, float64)       { return a.xlo, a.xhi }
func (a stubAxes) YLim() (float64, float64)       { return a.ylo, a.yhi }

// testAxes returns full-box axes on a w x h inch figure.
func testAxes(w, h, xlo, xhi, ylo, yhi float64) stubAxes {
	return stubAxes{figW: w, figH: h, pos: Full, xlo: xlo, xhi: xhi, ylo: ylo, yhi: yhi}
}

func approx(a, b, eps float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestCurrentAxes(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	SetCurrent(nil)
	if Current() != nil {
		t.Fatal("Current() should be nil after SetCurrent(nil)")
	}
	if _, err := Factor(nil); !errors.Is(err, ErrNoCurrentAxes) {
		t.Errorf("Factor(nil) error = %v, want ErrNoCurrentAxes", err)
	}

	ax := testAxes(6, 4.5, 0, 5, 0, 12)
	SetCurrent(ax)
	if Current() != Axes(ax) {
		t.Fatal("Current() did not return the axes set via SetCurrent")
	}
	got, err := Factor(nil)
	if err != nil {
		t.Fatalf("Factor(nil) error = %v", err)
	}
	if !approx(got, 27, 1e-12) {
		t.Errorf("Factor(nil) = %v, want 27", got)
	}
}

func TestExplicitAxesOverridesCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })
	SetCurrent(testAxes(6, 4.5, 0, 1, 0, 1))

	got, err := Factor(testAxes(6, 4.5, 0, 5, 0, 12))
	if err != nil {
		t.Fatalf("Factor() error = %v", err)
	}
	if !approx(got, 27, 1e-12) {
		t.Errorf("Factor() = %v, want 27 from the explicit axes", got)
	}
}
