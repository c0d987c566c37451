// Package server exposes plot generation over the MCP (Model Context
// Protocol).
//
// This package wires the CSV parsing and chart rendering pipeline into a
// single MCP tool. It's designed to work with Claude and other
// MCP-compatible clients, letting AI systems turn tabular data into images
// mid-conversation.
//
// # Transports
//
// Two transports are supported:
//   - stdio: JSON-RPC over stdin/stdout, for clients that spawn the server
//     as a subprocess
//   - http: the streamable HTTP transport on /mcp, for long-running
//     deployments; GET / serves a JSON health probe
//
// The protocol layer itself (handshake, tool listing, session handling)
// comes from github.com/mark3labs/mcp-go.
//
// # Available Tools
//
// The server provides a single tool:
//   - generate_plot: render CSV text as a line, bar, pie, or worldmap PNG
//
// The tool returns two content items on success: a text status ("Plot
// generated successfully") and the PNG image as base64 with mimeType
// image/png.
//
// # Error Handling
//
// Argument, parsing, and rendering failures are reported as tool results
// with isError set, keeping the error text visible to the calling model so
// it can fix its input and retry. Protocol-level errors are left to the
// mcp-go layer.
//
// # Usage
//
//	srv := server.New("1.0.0")
//	if err := srv.ServeStdio(); err != nil {
//	    log.Fatal().Err(err).Msg("server exited")
//	}
//
// For HTTP deployments call ServeHTTP with a listen address instead.
package server
