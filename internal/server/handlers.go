package server

import (
	"context"
	"encoding/base64"
	"fmt"

	humanize "github.com/dustin/go-humanize"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/plot-tools-mcp/internal/plot"
	"github.com/ironsheep/plot-tools-mcp/internal/table"
)

// handleGeneratePlot executes one generate_plot call:
//
//  1. Reads the arguments, applying the documented defaults
//  2. Decodes the options string before any parsing or rendering work
//  3. Parses the CSV text into a typed table
//  4. Renders the requested plot kind to PNG
//  5. Returns a text status plus the image as base64 content
//
// Failures become tool-level error results rather than protocol errors, so
// the calling model sees what went wrong and can correct its next attempt.
func handleGeneratePlot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plotType := req.GetString("plot_type", "line")
	rawOpts := req.GetString("json_kwargs", "None")

	csvData, err := req.RequireString("csv_data")
	if err != nil {
		return plotError(plotType, err), nil
	}

	opts, err := plot.DecodeOptions(rawOpts)
	if err != nil {
		return plotError(plotType, err), nil
	}
	tb, err := table.Parse(csvData)
	if err != nil {
		return plotError(plotType, err), nil
	}
	data, err := plot.Render(tb, plotType, opts)
	if err != nil {
		return plotError(plotType, err), nil
	}

	log.Info().
		Str("plot_type", plotType).
		Str("kwargs", rawOpts).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("Plot generated successfully")

	encoded := base64.StdEncoding.EncodeToString(data)
	return mcp.NewToolResultImage("Plot generated successfully", encoded, "image/png"), nil
}

// plotError logs a failed call and wraps it as a tool error result.
func plotError(plotType string, err error) *mcp.CallToolResult {
	log.Error().Err(err).Str("plot_type", plotType).Msg("Plot generation failed")
	return mcp.NewToolResultError(fmt.Sprintf("failed to generate plot: %v", err))
}
