// Package gonumplot measures gonum.org/v1/plot plots with datascale.
//
// A plot.Plot has no physical size until it is drawn, so Axes pairs it
// with the canvas size it will be saved at:
//
//	p := plot.New()
//	p.X.Min, p.X.Max = 0, 5
//	p.Y.Min, p.Y.Max = 0, 12
//
//	w, h := 6*vg.Inch, 4.5*vg.Inch
//	ax := gonumplot.New(p, w, h, gonumplot.WithDataArea())
//	lw, _ := ax.LineWidth()
//	line.LineStyle.Width = lw
//	p.Save(w, h, "out.png")
package gonumplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/gogpu/datascale"
)

// Axes adapts a plot.Plot drawn on a width x height canvas to
// datascale.Axes. Limits are read from the plot on every call.
type Axes struct {
	plot          *plot.Plot
	width, height vg.Length
	pos           datascale.Bounds
	measure       bool
}

var _ datascale.Axes = (*Axes)(nil)

// Option configures an Axes.
type Option func(*Axes)

// WithPosition sets the fraction of the canvas covered by the data area.
// The default is the whole canvas.
func WithPosition(b datascale.Bounds) Option {
	return func(a *Axes) {
		a.pos = b
		a.measure = false
	}
}

// WithDataArea lays the plot out on every call and uses the resulting
// data area, excluding title, axis labels and tick marks.
func WithDataArea() Option {
	return func(a *Axes) {
		a.measure = true
	}
}

// New returns an Axes for p saved at width x height.
func New(p *plot.Plot, width, height vg.Length, opts ...Option) *Axes {
	a := &Axes{plot: p, width: width, height: height, pos: datascale.Full}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FigureSize returns the canvas size in inches.
func (a *Axes) FigureSize() (width, height float64) {
	return float64(a.width / vg.Inch), float64(a.height / vg.Inch)
}

// Position returns the data area as a fraction of the canvas.
func (a *Axes) Position() datascale.Bounds {
	if a.measure {
		return DataArea(a.plot, a.width, a.height)
	}
	return a.pos
}

// XLim returns the plot's horizontal axis range.
func (a *Axes) XLim() (lo, hi float64) { return a.plot.X.Min, a.plot.X.Max }

// YLim returns the plot's vertical axis range.
func (a *Axes) YLim() (lo, hi float64) { return a.plot.Y.Min, a.plot.Y.Max }

// LineWidth returns a draw.LineStyle width of WithMultiplier data units.
func (a *Axes) LineWidth(opts ...datascale.Option) (vg.Length, error) {
	opts = append(opts[:len(opts):len(opts)], datascale.WithDrawKind(datascale.Stroke))
	v, err := datascale.PlotSize(a, opts...)
	if err != nil {
		return 0, err
	}
	return vg.Length(v), nil
}

// GlyphRadius returns a draw.GlyphStyle radius such that the glyph is
// WithMultiplier data units across.
func (a *Axes) GlyphRadius(opts ...datascale.Option) (vg.Length, error) {
	v, err := a.LineWidth(opts...)
	if err != nil {
		return 0, err
	}
	return v / 2, nil
}

// DPI returns the resolution at which one data unit spans WithMultiplier
// pixels, for use with vgimg.NewWith(vgimg.UseDPI(...)).
func (a *Axes) DPI(opts ...datascale.Option) (int, error) {
	v, err := datascale.PlotDPI(a, opts...)
	if err != nil {
		return 0, err
	}
	return int(math.Round(v)), nil
}

// DataArea lays p out on a width x height canvas and returns the area
// used for data as a fraction of the canvas. p is not modified.
func DataArea(p *plot.Plot, width, height vg.Length) datascale.Bounds {
	if width <= 0 || height <= 0 {
		return datascale.Bounds{}
	}
	// DataCanvas normalizes the axis ranges in place; lay out a copy.
	cp := *p
	c := draw.NewCanvas(new(recorder.Canvas), width, height)
	da := cp.DataCanvas(c).Rectangle
	return datascale.Bounds{
		X0:     float64(da.Min.X / width),
		Y0:     float64(da.Min.Y / height),
		Width:  float64((da.Max.X - da.Min.X) / width),
		Height: float64((da.Max.Y - da.Min.Y) / height),
	}
}
