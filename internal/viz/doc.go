// Package viz renders scene snapshots in the terminal.
//
// A [Renderer] draws onto a braille [Canvas] (2x4 dots per cell) through a
// [Camera] that maps world meters to dots with the origin near the
// bottom-left corner and y pointing up. The camera pans in dots and zooms
// between [MinScale] and [MaxScale] dots per meter.
//
// Overlays (trace, velocity and acceleration arrows, grid) are selected
// with [Options], usually derived from the display toggles of a
// parameter set. Colors come from a [Theme] through [Styles].
package viz
