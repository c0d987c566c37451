// Package table parses raw CSV text into a typed, column-oriented table.
//
// The first input line is the header and supplies the column names; every
// following line is a data row. Fields follow the standard CSV dialect:
// comma-delimited, double-quoted fields respected (including embedded commas
// and newlines), a leading UTF-8 BOM stripped.
//
// # Type Inference
//
// Each column's scalar type is inferred independently from its cells:
//   - Numeric: every non-empty cell parses as a float (decimal or scientific)
//   - Temporal: every non-empty cell parses under one of the supported
//     date/time layouts
//   - Text: everything else, including columns with no non-empty cells
//
// Numeric parsing is tried first, so a cell like "2024" is a number, never a
// year. Empty cells are allowed in any column and are reported as missing:
// NaN in numeric columns, the zero time in temporal columns, "" in text
// columns. Header and cell whitespace is trimmed before inference and
// storage.
//
// # Structural Validation
//
// Parse rejects input that is empty, has duplicate or blank header names, or
// has a row whose field count differs from the header (strict policy, no
// padding). All such failures wrap ErrMalformedInput.
package table
