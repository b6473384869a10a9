// Package datascale scales plot styling to data units.
//
// # Overview
//
// Plotting hosts size lines and markers in points (1/72 inch) and save
// images at a resolution in dots per inch. datascale reads the geometry of
// a set of axes and returns the matching values in data units instead: a
// line exactly one y unit thick, a scatter marker one x unit across, or a
// dpi at which every data unit spans five pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/datascale"
//	    "github.com/gogpu/datascale/figure"
//	)
//
//	fig := figure.New(6, 4.5)
//	ax := fig.AddAxes(datascale.Full)
//	ax.SetXLim(0, 5)
//	ax.SetYLim(0, 12)
//
//	lw, _ := datascale.PlotSize(ax)                                // 27 points
//	s, _ := datascale.PlotSize(ax, datascale.WithDrawKind(datascale.Marker)) // 729 points²
//	dpi, _ := datascale.PlotDPI(ax, datascale.WithMultiplier(5))
//
// # Geometry
//
// For each axis the ratio of rendering points to data units is
//
//	72 * figure size (inches) * axes box fraction / data range
//
// Results are only valid for the geometry at call time: compute them after
// every change to figure size, axes position, limits or aspect ratio.
//
// # Errors and advisories
//
// An unknown Axis, Method, DrawKind or RangePolicy is reported as a
// *ValidationError (errors.Is ErrInvalidInput). Non-fatal conditions, such
// as unequal axis scaling under AxisXY/Mean or a resolution outside the
// configured Limits, are Advisories: logged at warn level through Logger
// and passed to WithAdvisoryHandler. They never change the returned value.
//
// # Hosts
//
// Any type implementing Axes can be measured. Package figure provides a
// small gg-rendered figure model and package gonumplot adapts
// gonum.org/v1/plot plots.
package datascale

// Version is the current version of the library.
const Version = "0.1.0"
