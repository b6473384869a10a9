package datascale

import "sync"

// PointsPerInch is the number of rendering points in one inch.
const PointsPerInch = 72.0

// Bounds is a rectangle expressed as fractions of the enclosing figure.
// X0, Y0 is the lower-left corner.
type Bounds struct {
	X0, Y0        float64
	Width, Height float64
}

// Full is the bounding box covering the whole figure.
var Full = Bounds{X0: 0, Y0: 0, Width: 1, Height: 1}

// Axes is the geometry datascale reads from a plotting host.
//
// Implementations report the state at call time; datascale never caches
// or mutates it. See the figure and gonumplot packages for implementations.
type Axes interface {
	// FigureSize returns the enclosing figure size in inches.
	FigureSize() (width, height float64)

	// Position returns the axes box as a fraction of the figure.
	Position() Bounds

	// XLim returns the displayed horizontal data range.
	XLim() (lo, hi float64)

	// YLim returns the displayed vertical data range.
	YLim() (lo, hi float64)
}

var (
	currentMu sync.RWMutex
	current   Axes
)

// SetCurrent makes ax the axes used when an operation receives a nil Axes.
// Pass nil to clear it.
func SetCurrent(ax Axes) {
	currentMu.Lock()
	current = ax
	currentMu.Unlock()
}

// Current returns the axes set with SetCurrent, or nil if none.
func Current() Axes {
	currentMu.RLock()
	ax := current
	currentMu.RUnlock()
	return ax
}

// resolve returns ax, or the current axes when ax is nil.
func resolve(ax Axes) (Axes, error) {
	if ax != nil {
		return ax, nil
	}
	if cur := Current(); cur != nil {
		return cur, nil
	}
	return nil, ErrNoCurrentAxes
}
