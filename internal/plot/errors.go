package plot

import "errors"

// Sentinel errors raised by the rendering pipeline. Call sites wrap these
// with the offending identifier (column name, kind value, option key) via
// fmt.Errorf and %w; callers match with errors.Is. CSV-level failures wrap
// table.ErrMalformedInput instead.
var (
	// ErrUnsupportedPlotKind reports a plot kind outside the supported set.
	ErrUnsupportedPlotKind = errors.New("unsupported plot kind")

	// ErrInvalidOptions reports an options string that is not valid JSON, an
	// unrecognized option key, a wrongly typed value, or a recognized option
	// outside its valid domain (alpha outside [0,1], non-positive s, unknown
	// color or marker glyph).
	ErrInvalidOptions = errors.New("invalid options")

	// ErrColumnNotFound reports an x, y or hue option naming a column absent
	// from the table, or a default axis role the table cannot fill.
	ErrColumnNotFound = errors.New("column not found")

	// ErrMissingCoordinates reports a worldmap table with no recognizable
	// latitude or longitude column.
	ErrMissingCoordinates = errors.New("missing coordinate columns")

	// ErrAmbiguousShape reports a pie table that cannot be reduced to one
	// label column and one value column.
	ErrAmbiguousShape = errors.New("ambiguous table shape")

	// ErrInvalidValue reports numeric data that is semantically invalid for
	// the chosen chart, such as a non-positive pie slice or a non-numeric y.
	ErrInvalidValue = errors.New("invalid value")
)
