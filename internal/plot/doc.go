// Package plot renders parsed CSV tables into PNG charts.
//
// This package implements the four supported plot kinds: line charts, bar
// charts, pie charts, and world map scatter plots. Every render takes a
// *table.Table plus a decoded options map and returns finished PNG bytes;
// nothing touches the filesystem.
//
// # Options
//
// Options arrive from callers as a JSON object serialized to a string and
// are decoded with DecodeOptions before any rendering starts. Each plot
// kind recognizes its own option keys:
//   - line, bar: "x", "y", "hue" (column names)
//   - worldmap: "s", "c", "alpha", "marker" (marker styling)
//   - pie: no options
//
// Unrecognized keys are rejected rather than ignored, so a typo like "hua"
// surfaces as an error instead of a silently different chart.
//
// # Column Selection
//
// Line and bar charts default to the first column for x and the second for
// y when the options name neither. World maps locate their coordinate
// columns by name: "lat", "latitude", or "y" for latitude and "lon",
// "lng", "long", "longitude", or "x" for longitude, matched
// case-insensitively in that priority order.
//
// # Determinism
//
// Rendering is pure: the same table and options always produce identical
// PNG bytes. Colors come from a fixed palette keyed by series position,
// and category order follows first appearance in the data.
//
// # Error Handling
//
// Renderers return errors for:
//   - Unknown plot kinds (ErrUnsupportedPlotKind)
//   - Malformed or unrecognized options (ErrInvalidOptions)
//   - Column names that do not exist (ErrColumnNotFound)
//   - Missing coordinate columns on world maps (ErrMissingCoordinates)
//   - Tables whose shape fits no pie chart (ErrAmbiguousShape)
//   - Values a renderer cannot plot (ErrInvalidValue)
//
// All sentinels wrap with %w and are matched via errors.Is.
package plot
