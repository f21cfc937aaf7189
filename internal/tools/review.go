package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pmoncada/gemlens/internal/gemini"
	"github.com/pmoncada/gemlens/internal/source"
)

// ReviewTool handles the review_file MCP tool: a single-file code
// review with an optional focus area.
type ReviewTool struct {
	gen gemini.Generator
}

// NewReviewTool creates a ReviewTool backed by the given generator.
func NewReviewTool(gen gemini.Generator) *ReviewTool {
	return &ReviewTool{gen: gen}
}

// Definition returns the MCP tool definition for registration.
func (t *ReviewTool) Definition() mcp.Tool {
	return mcp.NewTool("review_file",
		mcp.WithDescription(
			"Review a single source file with Gemini. Optionally focus the review "+
				"on a specific concern (e.g. error handling, concurrency, naming).",
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the file to review"),
		),
		mcp.WithString("focus",
			mcp.Description("Optional focus area for the review"),
		),
	)
}

// Handle processes the review_file tool call.
func (t *ReviewTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := strings.TrimSpace(req.GetString("path", ""))
	if path == "" {
		return mcp.NewToolResultError("'path' is required"), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolving %s: %v", path, err)), nil
	}

	content, err := readReviewable(abs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	focus := strings.TrimSpace(req.GetString("focus", ""))
	review, err := t.gen.Generate(ctx, reviewPrompt(filepath.Base(abs), focus, content))
	if err != nil {
		return renderGenerateError(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Review of %s\n\n%s", abs, review)), nil
}

// readReviewable loads a file for review, rejecting binaries and files
// over the per-file size cap.
func readReviewable(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory — use analyze_codebase for directories", path)
	}
	if info.Size() > source.MaxFileBytes {
		return "", fmt.Errorf("%s is too large to review (%d bytes, cap %d)", path, info.Size(), source.MaxFileBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.ContainsRune(string(data), 0) {
		return "", fmt.Errorf("%s looks like a binary file", path)
	}
	return string(data), nil
}
