package datascale

import (
	"errors"
	"math"
	"testing"
)

func TestSizeFromFactor(t *testing.T) {
	tests := []struct {
		factor, mult float64
	}{
		{27, 1},
		{27, 2},
		{86.4, 0.5},
		{1e-3, 1e4},
		{72, 0},
		{13.5, -1},
	}
	for _, tt := range tests {
		stroke, err := SizeFromFactor(tt.factor, tt.mult, Stroke)
		if err != nil {
			t.Fatalf("SizeFromFactor(stroke) error = %v", err)
		}
		marker, err := SizeFromFactor(tt.factor, tt.mult, Marker)
		if err != nil {
			t.Fatalf("SizeFromFactor(marker) error = %v", err)
		}
		if want := tt.mult * tt.factor; stroke != want {
			t.Errorf("stroke(%v, %v) = %v, want %v", tt.factor, tt.mult, stroke, want)
		}
		if want := math.Pow(tt.mult*tt.factor, 2); !approx(marker, want, 1e-12) {
			t.Errorf("marker(%v, %v) = %v, want %v", tt.factor, tt.mult, marker, want)
		}
		if marker != stroke*stroke {
			t.Errorf("marker(%v, %v) = %v, want stroke^2 = %v", tt.factor, tt.mult, marker, stroke*stroke)
		}
	}
}

func TestSizeFromFactorInvalidKind(t *testing.T) {
	_, err := SizeFromFactor(27, 1, DrawKind(2))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("SizeFromFactor() error = %v, want ErrInvalidInput", err)
	}
}

func TestPlotSize(t *testing.T) {
	ax := testAxes(6, 4.5, 0, 5, 0, 12)
	tests := []struct {
		name string
		opts []Option
		want float64
	}{
		{"default line", nil, 27},
		{"line x2", []Option{WithMultiplier(2)}, 54},
		{"line x axis", []Option{WithAxis(AxisX)}, 86.4},
		{"scatter", []Option{WithDrawKind(Marker)}, 729},
		{"scatter x2", []Option{WithDrawKind(Marker), WithMultiplier(2)}, 2916},
		{"scatter x axis", []Option{WithDrawKind(Marker), WithAxis(AxisX)}, 86.4 * 86.4},
		{"xy low", []Option{WithAxis(AxisXY), WithMethod(Low)}, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlotSize(ax, tt.opts...)
			if err != nil {
				t.Fatalf("PlotSize() error = %v", err)
			}
			if !approx(got, tt.want, 1e-12) {
				t.Errorf("PlotSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlotSizeValidation(t *testing.T) {
	ax := testAxes(6, 4.5, 0, 5, 0, 12)
	tests := []struct {
		name string
		opts []Option
	}{
		{"kind", []Option{WithDrawKind(DrawKind(9))}},
		{"nan multiplier", []Option{WithMultiplier(math.NaN())}},
		{"inf multiplier", []Option{WithMultiplier(math.Inf(1))}},
		{"negative tolerance", []Option{WithTolerance(-1, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PlotSize(ax, tt.opts...); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("PlotSize() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
