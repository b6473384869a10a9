package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/datascale"
	"github.com/gogpu/datascale/figure"
)

// Output file names.
const (
	sizeImage = "datascale_plotdatasize_test.png"
	dpiImage  = "datascale_plotdatadpi_test.png"
)

// defaultDPI is the resolution of the size figure.
const defaultDPI = 100

func run(conf demoConfig) error {
	log := datascale.Logger()
	log.Info("running datascale demo, test images will be written", "dir", conf.OutDir)

	if err := os.MkdirAll(conf.OutDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(conf.OutDir, sizeImage)
	if err := sizeFigure(path); err != nil {
		return fmt.Errorf("size figure: %w", err)
	}
	log.Info("test figure saved", "path", path)

	path = filepath.Join(conf.OutDir, dpiImage)
	dpi, err := dpiFigure(path, conf)
	if err != nil {
		return fmt.Errorf("dpi figure: %w", err)
	}
	log.Info("test figure saved", "path", path, "dpi", dpi)
	return nil
}

// sizes bundles the widths and areas used by sizeFigure.
type sizes struct {
	lineY, lineY2, lineX          float64
	scatterY, scatterY2, scatterX float64
}

// measureSizes reads the current axes, as a plotting session would after
// setting the limits.
func measureSizes() (sizes, error) {
	var s sizes
	marker := datascale.WithDrawKind(datascale.Marker)
	xAxis := datascale.WithAxis(datascale.AxisX)
	double := datascale.WithMultiplier(2)

	steps := []struct {
		dst  *float64
		opts []datascale.Option
	}{
		{&s.lineY, nil},
		{&s.lineY2, []datascale.Option{double}},
		{&s.lineX, []datascale.Option{xAxis}},
		{&s.scatterY, []datascale.Option{marker}},
		{&s.scatterY2, []datascale.Option{marker, double}},
		{&s.scatterX, []datascale.Option{marker, xAxis}},
	}
	for _, st := range steps {
		v, err := datascale.PlotSize(nil, st.opts...)
		if err != nil {
			return sizes{}, err
		}
		*st.dst = v
	}
	return s, nil
}

func sizeFigure(path string) error {
	fig := figure.New(figure.DefaultWidth, figure.DefaultHeight)
	ax := fig.AddSubplot()
	ax.SetXLim(0, 5)
	ax.SetYLim(0, 12)

	s, err := measureSizes()
	if err != nil {
		return err
	}

	plots := []struct {
		xs, ys []float64
		style  figure.Line
	}{
		{[]float64{2, 4.5}, []float64{11, 11}, figure.Line{Width: s.lineY, Color: figure.C0}},
		{[]float64{2, 4.5}, []float64{9, 9}, figure.Line{Width: s.lineY2, Color: figure.C0}},
		{[]float64{2}, []float64{7}, figure.Line{Marker: figure.CircleMarker, MarkerSize: s.lineY, Color: figure.C1}},
		{[]float64{2}, []float64{5}, figure.Line{Marker: figure.CircleMarker, MarkerSize: s.lineY2, Color: figure.C1}},
		{[]float64{3}, []float64{6}, figure.Line{Marker: figure.CircleMarker, MarkerSize: s.lineX, Color: figure.C1}},
	}
	for _, p := range plots {
		if err := ax.Plot(p.xs, p.ys, p.style); err != nil {
			return err
		}
	}

	scatters := []struct {
		x, y, area float64
	}{
		{2, 3, s.scatterY},
		{2, 1, s.scatterY2},
		{3, 2, s.scatterX},
	}
	for _, sc := range scatters {
		if err := ax.Scatter([]float64{sc.x}, []float64{sc.y}, sc.area, figure.C2); err != nil {
			return err
		}
	}

	ax.Grid(figure.GridStyle{XStep: 0.5, YStep: 1})

	box := gg.White
	labels := []struct {
		x, y float64
		text string
	}{
		{0.2, 11, "linewidth of 1 y data unit"},
		{0.2, 9, "linewidth of 2 y data units"},
		{0.2, 7, "line marker with linewidth\nof 1 y data unit"},
		{0.2, 5, "line marker with linewidth\nof 2 y data units"},
		{0.2, 3, "scatter marker with size\nof 1 y data unit"},
		{0.2, 1, "scatter marker with size\nof 2 y data units"},
		{3.6, 6, "line marker with linewidth\nof 1 x data unit"},
		{3.6, 2, "scatter marker with size\nof 1 x data unit"},
	}
	for _, l := range labels {
		ax.Text(l.x, l.y, l.text, figure.TextStyle{Size: figure.XSmallSize, Box: &box})
	}
	ax.SetTitle("Linewidth and Markerwidth Set With Datascale")

	return fig.SavePNG(path, defaultDPI)
}

func dpiFigure(path string, conf demoConfig) (float64, error) {
	fig := figure.New(figure.DefaultWidth, figure.DefaultHeight)
	ax := fig.AddSubplot()
	ax.SetXLim(0, 100)
	ax.SetYLim(0, 100)
	ax.SetAspectEqual()

	xy := datascale.WithAxis(datascale.AxisXY)
	var widths [4]float64
	for i, mult := range []float64{0.5, 1, 2, 4} {
		w, err := datascale.PlotSize(nil, xy, datascale.WithMultiplier(mult))
		if err != nil {
			return 0, err
		}
		widths[i] = w
	}

	for i, x0 := range []float64{0, 20, 40, 60} {
		if err := ax.Plot([]float64{x0, x0 + 100}, []float64{0, 100}, figure.Line{Width: widths[i], Color: figure.C0}); err != nil {
			return 0, err
		}
	}
	ax.Grid(figure.GridStyle{XStep: 1, YStep: 1, Width: 0.1 * widths[1]})
	ax.SetTitle("Output DPI Set With Datascale")

	dpi, err := datascale.PlotDPI(nil,
		datascale.WithMultiplier(conf.DPIMult),
		datascale.WithPolicy(conf.Policy),
		datascale.WithLimits(conf.Limits))
	if err != nil {
		return 0, err
	}

	p := message.NewPrinter(language.English)
	label := p.Sprintf("Set to resolve %v pixels per data unit\nCalculated %3.2f dpi\n*zoom to see detail", conf.DPIMult, dpi)
	box := gg.White
	ax.Text(5, 88, label, figure.TextStyle{Size: 10, Box: &box})

	if err := fig.SavePNG(path, dpi); err != nil {
		return 0, err
	}
	return dpi, nil
}
