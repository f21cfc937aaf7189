// gemlens: codebase-analysis MCP server backed by Gemini.
//
// A local MCP server that lets any AI coding tool (Claude Code,
// Cursor, VS Code Copilot, ...) analyze codebases through the Gemini
// API, rotating through a pool of API keys when individual keys hit
// rate limits or quota.
//
// Usage:
//
//	gemlens serve    # Start MCP server (stdio transport)
//	gemlens update   # Update to the latest version
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	lensserver "github.com/pmoncada/gemlens/internal/server"
	"github.com/pmoncada/gemlens/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("gemlens v%s\n", lensserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// All diagnostics go to stderr — stdout is the MCP stdio transport.
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))

	s, cfg, err := lensserver.New(log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(log, cfg.MetricsAddr)
	}

	// Background version check — prints to stderr so it doesn't
	// interfere with the transport.
	go checkForUpdates()

	log.Info("serving MCP over stdio", "version", lensserver.Version)
	return server.ServeStdio(s)
}

// serveMetrics exposes the Prometheus registry. Best effort: a busy
// port is logged, not fatal.
func serveMetrics(log *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("metrics listener starting", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Warn("metrics listener stopped", "err", err)
	}
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. Network failures are silently
// ignored.
func checkForUpdates() {
	result := updater.CheckVersion(lensserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n"+
				"  Run: gemlens update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "Checking for updates...\n")

	result := updater.CheckVersion(lensserver.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "New version available: v%s -> v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Downloading...\n")

	if err := updater.SelfUpdate(lensserver.Version); err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n  You can download manually from:\n  %s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Restart gemlens to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gemlens v%s — codebase-analysis MCP server backed by Gemini

Usage:
  gemlens serve    Start the MCP server (stdio transport)
  gemlens update   Update to the latest version

Environment:
  GEMINI_API_KEY        API key, or comma-separated list of keys to rotate through
  GEMLENS_MODEL         Model name (default: gemini-2.0-flash)
  GEMLENS_DEADLINE      Retry budget per request (default: 240s)
  GEMLENS_ROTATE_DELAY  Pause between key rotations (default: 1s)
  GEMLENS_METRICS_ADDR  Optional Prometheus listen address (e.g. :9187)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "gemlens": {
        "command": "gemlens",
        "args": ["serve"],
        "env": { "GEMINI_API_KEY": "key-one,key-two" }
      }
    }
  }

Learn more: https://github.com/pmoncada/gemlens
`, lensserver.Version)
}
