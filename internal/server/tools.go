package server

import "github.com/mark3labs/mcp-go/mcp"

// generatePlotTool defines the generate_plot tool announced to clients.
//
// The tool takes CSV text plus a plot kind and renders a PNG chart. All
// arguments are strings so any MCP client can call it without special
// argument encoding; the options argument carries a nested JSON object
// serialized to a string, matching how charting kwargs are usually passed
// around.
func generatePlotTool() mcp.Tool {
	return mcp.NewTool("generate_plot",
		mcp.WithDescription("Generate a plot from CSV data and return it as a PNG image. Supported plot types: line, bar, pie, worldmap."),
		mcp.WithString("csv_data",
			mcp.Required(),
			mcp.Description("CSV text to plot. The first line must be a header row naming the columns."),
		),
		mcp.WithString("plot_type",
			mcp.DefaultString("line"),
			mcp.Enum("line", "bar", "pie", "worldmap"),
			mcp.Description("The kind of plot to draw."),
		),
		mcp.WithString("json_kwargs",
			mcp.DefaultString("None"),
			mcp.Description(`Plot options as a JSON object serialized to a string. line and bar accept "x", "y" and "hue" column names; worldmap accepts marker styling via "s", "c", "alpha" and "marker"; pie accepts no options. Pass "None" or omit for defaults.`),
		),
	)
}
