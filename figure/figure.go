package figure

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/datascale"
)

// Default figure size in inches.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
)

// SubplotBounds is the box AddSubplot gives a single subplot.
var SubplotBounds = datascale.Bounds{X0: 0.125, Y0: 0.11, Width: 0.775, Height: 0.77}

var (
	// ErrInvalidSize is returned when rendering a figure whose pixel size
	// would be empty or non-finite.
	ErrInvalidSize = errors.New("figure: invalid figure size")

	// ErrInvalidDPI is returned for a resolution that is not finite and
	// positive.
	ErrInvalidDPI = errors.New("figure: invalid dpi")

	// ErrNoFont is returned when the text face cannot be loaded.
	ErrNoFont = errors.New("figure: font unavailable")

	// ErrLengthMismatch is returned when coordinate slices differ in length.
	ErrLengthMismatch = errors.New("figure: coordinate length mismatch")
)

// MaxPixels bounds the pixel area a figure may be rendered at.
const MaxPixels = 1 << 28

// Figure is a drawing surface of a physical size holding axes.
type Figure struct {
	width, height float64
	background    gg.RGBA
	axes          []*Axes
	renderer      gg.Renderer
}

// New creates a figure of the given size in inches.
func New(width, height float64) *Figure {
	return &Figure{width: width, height: height, background: gg.White}
}

// Size returns the figure size in inches.
func (f *Figure) Size() (width, height float64) {
	return f.width, f.height
}

// SetSize changes the figure size in inches. Sizes computed by datascale
// before the change are stale afterwards.
func (f *Figure) SetSize(width, height float64) {
	f.width, f.height = width, height
}

// SetRenderer makes Render draw through r instead of gg's software
// renderer. Pass nil to restore the default.
func (f *Figure) SetRenderer(r gg.Renderer) {
	f.renderer = r
}

// AddAxes adds axes occupying b and makes them current for datascale.
func (f *Figure) AddAxes(b datascale.Bounds) *Axes {
	ax := &Axes{
		fig:  f,
		box:  b,
		xlim: [2]float64{0, 1},
		ylim: [2]float64{0, 1},
	}
	f.axes = append(f.axes, ax)
	datascale.SetCurrent(ax)
	return ax
}

// AddSubplot adds axes at SubplotBounds and makes them current.
func (f *Figure) AddSubplot() *Axes {
	return f.AddAxes(SubplotBounds)
}

// Axes returns the axes of f in drawing order.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// PixelSize returns the image size in pixels at dpi.
func (f *Figure) PixelSize(dpi float64) (width, height int, err error) {
	if !(dpi > 0) || math.IsInf(dpi, 0) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidDPI, dpi)
	}
	w := math.Round(f.width * dpi)
	h := math.Round(f.height * dpi)
	if !(w >= 1) || !(h >= 1) || w*h > MaxPixels {
		return 0, 0, fmt.Errorf("%w: %gx%g in at %g dpi", ErrInvalidSize, f.width, f.height, dpi)
	}
	return int(w), int(h), nil
}

// Render draws the figure at dpi and returns the drawing context.
// The caller owns the context and should Close it.
func (f *Figure) Render(dpi float64) (*gg.Context, error) {
	w, h, err := f.PixelSize(dpi)
	if err != nil {
		return nil, err
	}
	datascale.Logger().Debug("figure: render",
		"width_in", f.width, "height_in", f.height, "dpi", dpi, "width_px", w, "height_px", h)

	var opts []gg.ContextOption
	if f.renderer != nil {
		opts = append(opts, gg.WithRenderer(f.renderer))
	}
	dc := gg.NewContext(w, h, opts...)
	dc.ClearWithColor(f.background)

	r := &renderer{dc: dc, dpi: dpi, width: float64(w), height: float64(h)}
	for _, ax := range f.axes {
		if err := ax.draw(r); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// SavePNG renders the figure at dpi and writes it to path.
func (f *Figure) SavePNG(path string, dpi float64) error {
	dc, err := f.Render(dpi)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("figure: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG renders the figure at dpi and writes PNG data to w.
func (f *Figure) EncodePNG(w io.Writer, dpi float64) error {
	dc, err := f.Render(dpi)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}
