package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pmoncada/gemlens/internal/gemini"
	"github.com/pmoncada/gemlens/internal/source"
)

// AnalyzeTool handles the analyze_codebase MCP tool: it gathers the
// sources under a directory and asks the model for an architecture
// analysis or an answer to a specific question.
type AnalyzeTool struct {
	gen gemini.Generator
}

// NewAnalyzeTool creates an AnalyzeTool backed by the given generator.
func NewAnalyzeTool(gen gemini.Generator) *AnalyzeTool {
	return &AnalyzeTool{gen: gen}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze_codebase",
		mcp.WithDescription(
			"Analyze a local codebase with Gemini. Gathers the text files under a "+
				"directory and either answers a specific question about them or "+
				"produces a general architecture review.",
		),
		mcp.WithString("directory",
			mcp.Required(),
			mcp.Description("Path to the codebase root to analyze"),
		),
		mcp.WithString("question",
			mcp.Description("Optional question to answer about the codebase; omit for a general analysis"),
		),
		mcp.WithNumber("max_bytes",
			mcp.Description("Optional cap on total gathered source bytes (default: 4 MiB)"),
		),
	)
}

// Handle processes the analyze_codebase tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir := strings.TrimSpace(req.GetString("directory", ""))
	if dir == "" {
		return mcp.NewToolResultError("'directory' is required"), nil
	}

	abs, err := resolveDir(dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	bundle, err := source.Collect(abs, int64(intArg(req, "max_bytes", 0)))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gathering sources: %v", err)), nil
	}

	question := strings.TrimSpace(req.GetString("question", ""))
	answer, err := t.gen.Generate(ctx, analysisPrompt(question, bundle.Text))
	if err != nil {
		return renderGenerateError(err), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed %d files under %s", bundle.Files, abs))
	if bundle.Truncated {
		sb.WriteString(" (truncated at the size cap — pass a larger max_bytes to include more)")
	}
	sb.WriteString("\n\n")
	sb.WriteString(answer)

	return mcp.NewToolResultText(sb.String()), nil
}
