package figure

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/datascale"
)

// renderer carries the drawing context and the pixel density of a Render
// call.
type renderer struct {
	dc            *gg.Context
	dpi           float64
	width, height float64 // pixels
}

// px converts points to pixels.
func (r *renderer) px(points float64) float64 {
	return points * r.dpi / datascale.PointsPerInch
}

// frame returns the pixel rectangle of a figure-fraction box. Figure
// fractions grow upwards, pixels grow downwards.
func (r *renderer) frame(b datascale.Bounds) (left, top, w, h float64) {
	w = b.Width * r.width
	h = b.Height * r.height
	left = b.X0 * r.width
	top = r.height - b.Y0*r.height - h
	return left, top, w, h
}

// face returns the Go Regular face at size points.
func (r *renderer) face(size float64) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
	}
	return src.Face(r.px(size)), nil
}

// transform maps data coordinates of one axes into pixels.
type transform struct {
	left, top, w, h float64
	xlo, xhi        float64
	ylo, yhi        float64
}

// Apply returns the pixel position of data point (x, y).
func (t transform) Apply(x, y float64) gg.Point {
	px := t.left + (x-t.xlo)/(t.xhi-t.xlo)*t.w
	py := t.top + t.h - (y-t.ylo)/(t.yhi-t.ylo)*t.h
	return gg.Pt(px, py)
}

var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})
