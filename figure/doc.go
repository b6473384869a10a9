// Package figure is a minimal figure model rendered with gg.
//
// A Figure has a physical size in inches and holds one or more Axes, each
// occupying a fraction of the figure and displaying a data range. Axes
// implement datascale.Axes, so line widths and marker sizes for them can be
// computed with datascale.PlotSize and the output resolution with
// datascale.PlotDPI.
//
// Sizes follow the usual plotting conventions: line widths and line marker
// sizes are in points, scatter sizes are areas in points². A figure rendered
// at d dpi is width*d by height*d pixels and one point spans d/72 pixels.
//
// The package renders only what the datascale demonstration needs: polylines,
// circle markers, scatter circles, grid lines, boxed text labels and a title.
package figure
