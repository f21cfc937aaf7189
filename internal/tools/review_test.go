package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReviewTool_Definition(t *testing.T) {
	def := NewReviewTool(&fakeGenerator{}).Definition()

	if def.Name != "review_file" {
		t.Errorf("tool name = %q, want %q", def.Name, "review_file")
	}
	required := def.InputSchema.Required
	if len(required) != 1 || required[0] != "path" {
		t.Errorf("required = %v, want [path]", required)
	}
}

func TestReviewTool_Handle_ReviewsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "handler.go")
	content := "package web\n\nfunc Handle() error { return nil }\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	gen := &fakeGenerator{answer: "Looks fine, but name the error."}
	tool := NewReviewTool(gen)

	result, err := tool.Handle(context.Background(), toolReq(map[string]interface{}{
		"path":  path,
		"focus": "error handling",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "Looks fine") {
		t.Errorf("result missing review text: %q", getResultText(result))
	}

	for _, want := range []string{"error handling", "func Handle() error", "handler.go"} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestReviewTool_Handle_MissingPath(t *testing.T) {
	tool := NewReviewTool(&fakeGenerator{})

	result, err := tool.Handle(context.Background(), toolReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected tool error for missing path")
	}
}

func TestReviewTool_Handle_RejectsDirectoryAndBinary(t *testing.T) {
	dir := t.TempDir()
	tool := NewReviewTool(&fakeGenerator{})

	result, err := tool.Handle(context.Background(), toolReq(map[string]interface{}{
		"path": dir,
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected tool error for directory path")
	}

	bin := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(bin, []byte{0x7f, 0x45, 0x00, 0x01}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	result, err = tool.Handle(context.Background(), toolReq(map[string]interface{}{
		"path": bin,
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected tool error for binary file")
	}
}
