package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/plot-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	transport := flag.String("transport", "http", "transport to serve: http or stdio")
	addr := flag.String("addr", defaultAddr(), "listen address for the http transport")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Printf("plot-tools-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	// Logging goes to stderr, so this is safe on both transports; stdout
	// stays clean for the stdio protocol.
	log.Info().
		Str("version", Version).
		Str("transport", *transport).
		Msg("Starting plotting-mcp")

	srv := server.New(Version)
	switch *transport {
	case "stdio":
		err = srv.ServeStdio()
	case "http":
		err = srv.ServeHTTP(*addr)
	default:
		fmt.Fprintf(os.Stderr, "unknown transport %q (want http or stdio)\n", *transport)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// defaultAddr builds the http listen address, honoring the MCP_PORT
// environment variable container deployments set.
func defaultAddr() string {
	if port := os.Getenv("MCP_PORT"); port != "" {
		return ":" + port
	}
	return ":8000"
}
