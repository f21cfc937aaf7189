package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pmoncada/gemlens/internal/gemini"
)

// AskTool handles the ask_gemini MCP tool: a raw prompt passthrough
// for ad-hoc questions that don't need local sources attached.
type AskTool struct {
	gen gemini.Generator
}

// NewAskTool creates an AskTool backed by the given generator.
func NewAskTool(gen gemini.Generator) *AskTool {
	return &AskTool{gen: gen}
}

// Definition returns the MCP tool definition for registration.
func (t *AskTool) Definition() mcp.Tool {
	return mcp.NewTool("ask_gemini",
		mcp.WithDescription(
			"Send a prompt directly to Gemini and return the response. "+
				"Uses the same key pool and rotation as the analysis tools.",
		),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt to send"),
		),
	)
}

// Handle processes the ask_gemini tool call.
func (t *AskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt := strings.TrimSpace(req.GetString("prompt", ""))
	if prompt == "" {
		return mcp.NewToolResultError("'prompt' is required"), nil
	}

	answer, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return renderGenerateError(err), nil
	}
	return mcp.NewToolResultText(answer), nil
}
