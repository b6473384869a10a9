package figure

import "math"

func (g *GridStyle) draw(r *renderer, t transform) error {
	dc := r.dc
	c := g.Color
	if c.A == 0 {
		c.R, c.G, c.B, c.A = 0.69, 0.69, 0.69, 1
	}
	width := g.Width
	if width <= 0 {
		width = 0.8
	}
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(r.px(width))

	for _, v := range ticks(t.xlo, t.xhi, g.XStep) {
		p := t.Apply(v, t.ylo)
		dc.DrawLine(p.X, t.top, p.X, t.top+t.h)
	}
	for _, v := range ticks(t.ylo, t.yhi, g.YStep) {
		p := t.Apply(t.xlo, v)
		dc.DrawLine(t.left, p.Y, t.left+t.w, p.Y)
	}
	return dc.Stroke()
}

// maxTicks bounds the grid lines drawn per direction.
const maxTicks = 10000

// ticks returns the multiples of step within [lo, hi], in either order.
func ticks(lo, hi, step float64) []float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	eps := step * 1e-9
	first := math.Ceil((lo - eps) / step)
	last := math.Floor((hi + eps) / step)
	if last-first+1 > maxTicks || math.IsNaN(first) || math.IsNaN(last) {
		return nil
	}
	out := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		out = append(out, i*step)
	}
	return out
}
