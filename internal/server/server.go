// Package server wires all MCP components and creates the server
// instance. This is the composition root: it loads configuration,
// resolves the API-key pool, builds the rotating generator, and
// registers the tools. No business logic lives here — only wiring.
package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pmoncada/gemlens/internal/config"
	"github.com/pmoncada/gemlens/internal/gemini"
	"github.com/pmoncada/gemlens/internal/keys"
	"github.com/pmoncada/gemlens/internal/observe"
	"github.com/pmoncada/gemlens/internal/rotate"
	"github.com/pmoncada/gemlens/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
// It returns the loaded config so the caller can start the optional
// metrics listener.
func New(log *slog.Logger) (*server.MCPServer, *config.Config, error) {
	cfg := config.Load(log)

	pool := keys.Resolve(cfg.RawAPIKeys)
	if len(pool) == 0 {
		return nil, nil, fmt.Errorf("no API keys configured: set GEMINI_API_KEY (comma-separated for multiple keys)")
	}
	// Only the pool size is loggable; key values never leave the pool.
	log.Info("key pool resolved", "pool_size", len(pool), "model", cfg.Model)

	observer := rotate.Multi{rotate.LogObserver{Log: log}}
	if cfg.MetricsAddr != "" {
		observer = append(observer, observe.NewMetrics(prometheus.DefaultRegisterer))
	}

	gen := gemini.NewRotator(pool, cfg.Model,
		rotate.WithDeadline(cfg.Deadline),
		rotate.WithDelay(cfg.RotateDelay),
		rotate.WithObserver(observer),
	)

	s := server.NewMCPServer(
		"gemlens",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	analyzeTool := tools.NewAnalyzeTool(gen)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	reviewTool := tools.NewReviewTool(gen)
	s.AddTool(reviewTool.Definition(), reviewTool.Handle)

	askTool := tools.NewAskTool(gen)
	s.AddTool(askTool.Definition(), askTool.Handle)

	return s, cfg, nil
}

// serverInstructions returns the system instructions that tell the AI
// client how to use gemlens effectively.
func serverInstructions() string {
	return `You have access to gemlens, a codebase-analysis MCP server backed by Gemini.

## Tools

- analyze_codebase(directory, question?, max_bytes?): gathers the text
  files under a directory and either answers a specific question about
  them or produces a general architecture review. Prefer passing a
  question — focused prompts produce better answers.
- review_file(path, focus?): reviews a single file. Use the focus
  parameter to direct the review (e.g. "error handling", "concurrency").
- ask_gemini(prompt): sends a prompt directly to Gemini without
  attaching local sources.

## Behavior to expect

- Requests are retried across a pool of API keys. A transient failure
  (rate limit, quota, overload) rotates to the next key automatically;
  you will only see an error when every key is exhausted within the
  time budget or the request itself is malformed.
- Large directories are truncated at a size cap. The response says so —
  pass max_bytes to include more, or point the tool at a subdirectory.
- Results are not cached or stored. Each call is one fresh request.

## When NOT to use gemlens

- Don't use ask_gemini for questions about local code — use
  analyze_codebase so the sources are attached.
- Don't retry a failed call in a loop; the server already rotated
  through every configured key before reporting the failure.`
}
