// Package tools implements the MCP tool handlers for codebase analysis.
//
// Each file holds one tool. Tools depend on the gemini.Generator
// interface, never on key pools or rotation mechanics: classification
// and retries happen inside the executor, and handlers only render
// whatever it returns. They must not re-attempt.
package tools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pmoncada/gemlens/internal/rotate"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// resolveDir validates and absolutizes a directory argument.
func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return abs, nil
}

// renderGenerateError turns an executor failure into a tool error
// result the AI client can show the user.
func renderGenerateError(err error) *mcp.CallToolResult {
	var de *rotate.DeadlineError
	switch {
	case errors.Is(err, rotate.ErrNoKeys):
		return mcp.NewToolResultError(
			"No API keys configured. Set GEMINI_API_KEY (comma-separated for multiple keys) and restart the server.",
		)
	case errors.As(err, &de):
		return mcp.NewToolResultError(fmt.Sprintf(
			"All keys exhausted: %d attempts across a pool of %d before the deadline. Last error: %v",
			de.Attempts, de.PoolSize, de.LastErr,
		))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Generation failed: %v", err))
	}
}
