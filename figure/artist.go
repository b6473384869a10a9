package figure

import (
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Font sizes in points.
const (
	TitleSize  = 12.0
	XSmallSize = 5.79
)

// Default colors of the first three plotted series.
var (
	C0 = gg.Hex("#1f77b4")
	C1 = gg.Hex("#ff7f0e")
	C2 = gg.Hex("#2ca02c")
)

// MarkerShape selects the marker drawn at each point of a Line.
type MarkerShape int

const (
	// NoMarker draws no markers.
	NoMarker MarkerShape = iota

	// CircleMarker draws filled circles.
	CircleMarker
)

// Line styles a polyline added with Axes.Plot. Width and MarkerSize are in
// points; MarkerSize is the marker diameter. A zero Width draws markers
// only.
type Line struct {
	Width      float64
	Color      gg.RGBA
	Marker     MarkerShape
	MarkerSize float64
}

// GridStyle draws lines at every multiple of XStep and YStep inside the
// axes limits. A non-positive step disables that direction.
type GridStyle struct {
	XStep, YStep float64
	Width        float64 // points
	Color        gg.RGBA
}

// TextStyle styles an Axes.Text label. Size is in points; zero means
// XSmallSize. A non-nil Box draws a filled, outlined rectangle behind the
// label.
type TextStyle struct {
	Size  float64
	Color gg.RGBA
	Box   *gg.RGBA
}

// artist is anything drawn inside an Axes.
type artist interface {
	draw(r *renderer, t transform) error
	clipped() bool
}

type lineArtist struct {
	xs, ys []float64
	style  Line
}

func (l *lineArtist) clipped() bool { return true }

func (l *lineArtist) draw(r *renderer, t transform) error {
	dc := r.dc
	c := l.style.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)

	if l.style.Width > 0 && len(l.xs) > 1 {
		dc.SetLineWidth(r.px(l.style.Width))
		dc.SetLineCap(gg.LineCapButt)
		for i := range l.xs {
			p := t.Apply(l.xs[i], l.ys[i])
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if l.style.Marker == CircleMarker && l.style.MarkerSize > 0 {
		radius := r.px(l.style.MarkerSize) / 2
		for i := range l.xs {
			p := t.Apply(l.xs[i], l.ys[i])
			dc.DrawCircle(p.X, p.Y, radius)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}
	return nil
}

type scatterArtist struct {
	xs, ys []float64
	area   float64
	color  gg.RGBA
}

func (s *scatterArtist) clipped() bool { return true }

func (s *scatterArtist) draw(r *renderer, t transform) error {
	if s.area <= 0 {
		return nil
	}
	dc := r.dc
	dc.SetRGBA(s.color.R, s.color.G, s.color.B, s.color.A)
	radius := r.px(math.Sqrt(s.area)) / 2
	for i := range s.xs {
		p := t.Apply(s.xs[i], s.ys[i])
		dc.DrawCircle(p.X, p.Y, radius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

type textArtist struct {
	x, y  float64
	s     string
	style TextStyle
}

func (tx *textArtist) clipped() bool { return false }

func (tx *textArtist) draw(r *renderer, t transform) error {
	size := tx.style.Size
	if size <= 0 {
		size = XSmallSize
	}
	face, err := r.face(size)
	if err != nil {
		return err
	}
	m := face.Metrics()
	lineH := m.Ascent + m.Descent + m.LineGap
	lines := strings.Split(tx.s, "\n")

	var width float64
	for _, ln := range lines {
		width = math.Max(width, face.Advance(ln))
	}
	height := lineH * float64(len(lines))

	anchor := t.Apply(tx.x, tx.y)
	left := anchor.X
	top := anchor.Y - height/2

	dc := r.dc
	if tx.style.Box != nil {
		pad := r.px(size * 0.3)
		b := *tx.style.Box
		dc.SetRGBA(b.R, b.G, b.B, b.A)
		dc.DrawRectangle(left-pad, top-pad, width+2*pad, height+2*pad)
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(r.px(0.5))
		dc.DrawRectangle(left-pad, top-pad, width+2*pad, height+2*pad)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	c := tx.style.Color
	if c == (gg.RGBA{}) {
		c = gg.Black
	}
	dc.SetFont(face)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	for i, ln := range lines {
		dc.DrawString(ln, left, top+float64(i)*lineH+m.Ascent)
	}
	return nil
}
