package figure

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/datascale"
)

// Axes is a data area inside a Figure. It implements datascale.Axes.
type Axes struct {
	fig     *Figure
	box     datascale.Bounds
	xlim    [2]float64
	ylim    [2]float64
	equal   bool
	title   string
	grid    *GridStyle
	artists []artist
}

var _ datascale.Axes = (*Axes)(nil)

// Figure returns the figure holding a.
func (a *Axes) Figure() *Figure { return a.fig }

// FigureSize returns the size of the enclosing figure in inches.
func (a *Axes) FigureSize() (width, height float64) {
	return a.fig.Size()
}

// Position returns the axes box as a fraction of the figure.
//
// With equal aspect the box given to AddAxes is shrunk along one
// direction, and centered, so that a data unit spans the same length on
// both axes.
func (a *Axes) Position() datascale.Bounds {
	b := a.box
	if !a.equal {
		return b
	}
	fw, fh := a.fig.Size()
	bw, bh := b.Width*fw, b.Height*fh
	xr := math.Abs(a.xlim[1] - a.xlim[0])
	yr := math.Abs(a.ylim[1] - a.ylim[0])
	if bw <= 0 || bh <= 0 || xr == 0 || yr == 0 {
		return b
	}
	if bw/xr > bh/yr {
		nw := bh * xr / yr
		b.X0 += (bw - nw) / 2 / fw
		b.Width = nw / fw
	} else {
		nh := bw * yr / xr
		b.Y0 += (bh - nh) / 2 / fh
		b.Height = nh / fh
	}
	return b
}

// XLim returns the horizontal data range.
func (a *Axes) XLim() (lo, hi float64) { return a.xlim[0], a.xlim[1] }

// YLim returns the vertical data range.
func (a *Axes) YLim() (lo, hi float64) { return a.ylim[0], a.ylim[1] }

// SetXLim sets the horizontal data range.
func (a *Axes) SetXLim(lo, hi float64) { a.xlim = [2]float64{lo, hi} }

// SetYLim sets the vertical data range.
func (a *Axes) SetYLim(lo, hi float64) { a.ylim = [2]float64{lo, hi} }

// SetAspectEqual makes one data unit equally long on both axes by
// shrinking the axes box.
func (a *Axes) SetAspectEqual() { a.equal = true }

// SetTitle sets the text drawn centered above the axes.
func (a *Axes) SetTitle(s string) { a.title = s }

// Grid enables grid lines.
func (a *Axes) Grid(g GridStyle) { a.grid = &g }

// Plot adds a polyline through (xs[i], ys[i]) with optional markers.
func (a *Axes) Plot(xs, ys []float64, style Line) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	a.artists = append(a.artists, &lineArtist{xs: clone(xs), ys: clone(ys), style: style})
	return nil
}

// Scatter adds filled circles of area points² at (xs[i], ys[i]).
// The circles have no edge, so an area from datascale.PlotSize with
// datascale.Marker is exact.
func (a *Axes) Scatter(xs, ys []float64, area float64, color gg.RGBA) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	a.artists = append(a.artists, &scatterArtist{xs: clone(xs), ys: clone(ys), area: area, color: color})
	return nil
}

// Text adds a label whose left edge and vertical center are at (x, y).
// Lines are separated by "\n". Labels are not clipped to the axes box.
func (a *Axes) Text(x, y float64, s string, style TextStyle) {
	a.artists = append(a.artists, &textArtist{x: x, y: y, s: s, style: style})
}

func (a *Axes) transform(r *renderer) transform {
	left, top, w, h := r.frame(a.Position())
	return transform{
		left: left, top: top, w: w, h: h,
		xlo: a.xlim[0], xhi: a.xlim[1],
		ylo: a.ylim[0], yhi: a.ylim[1],
	}
}

func (a *Axes) draw(r *renderer) error {
	dc := r.dc
	t := a.transform(r)

	dc.SetColor(gg.White.Color())
	dc.DrawRectangle(t.left, t.top, t.w, t.h)
	if err := dc.Fill(); err != nil {
		return err
	}

	if err := a.drawClipped(r, t); err != nil {
		return err
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(r.px(0.8))
	dc.DrawRectangle(t.left, t.top, t.w, t.h)
	if err := dc.Stroke(); err != nil {
		return err
	}

	for _, art := range a.artists {
		if art.clipped() {
			continue
		}
		if err := art.draw(r, t); err != nil {
			return err
		}
	}

	if a.title == "" {
		return nil
	}
	face, err := r.face(TitleSize)
	if err != nil {
		return err
	}
	dc.SetFont(face)
	dc.SetRGB(0, 0, 0)
	w := face.Advance(a.title)
	dc.DrawString(a.title, t.left+(t.w-w)/2, t.top-r.px(6)-face.Metrics().Descent)
	return nil
}

// drawClipped draws the grid and the clipped artists inside the axes box.
func (a *Axes) drawClipped(r *renderer, t transform) error {
	dc := r.dc
	dc.Push()
	defer dc.Pop()
	dc.ClipRect(t.left, t.top, t.w, t.h)
	if a.grid != nil {
		if err := a.grid.draw(r, t); err != nil {
			return err
		}
	}
	for _, art := range a.artists {
		if !art.clipped() {
			continue
		}
		if err := art.draw(r, t); err != nil {
			return err
		}
	}
	return nil
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
