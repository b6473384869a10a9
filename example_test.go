package datascale_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/datascale"
)

// chartAxes is a fixed axes geometry for the examples.
type chartAxes struct{}

func (chartAxes) FigureSize() (float64, float64) { return 6, 4.5 }
func (chartAxes) Position() datascale.Bounds     { return datascale.Full }
func (chartAxes) XLim() (float64, float64)       { return 0, 5 }
func (chartAxes) YLim() (float64, float64)       { return 0, 12 }

func ExamplePlotSize() {
	var ax chartAxes

	lw, _ := datascale.PlotSize(ax)
	s, _ := datascale.PlotSize(ax, datascale.WithDrawKind(datascale.Marker))
	fmt.Println(lw, s)
	// Output: 27 729
}

func ExamplePlotDPI() {
	var ax chartAxes

	// One horizontal data unit is 86.4 points; ask for 100 pixels per unit.
	dpi, _ := datascale.PlotDPI(ax, datascale.WithAxis(datascale.AxisX), datascale.WithMultiplier(100))
	fmt.Printf("%.2f\n", dpi)
	// Output: 83.33
}

func ExampleParseAxis() {
	_, err := datascale.ParseAxis("z")
	fmt.Println(err)
	fmt.Println(errors.Is(err, datascale.ErrInvalidInput))
	// Output:
	// datascale: invalid axis "z" (want one of y, x, xy)
	// true
}
