package tools

import (
	"context"
	"strings"
	"testing"
)

func TestAskTool_Definition(t *testing.T) {
	def := NewAskTool(&fakeGenerator{}).Definition()

	if def.Name != "ask_gemini" {
		t.Errorf("tool name = %q, want %q", def.Name, "ask_gemini")
	}
	required := def.InputSchema.Required
	if len(required) != 1 || required[0] != "prompt" {
		t.Errorf("required = %v, want [prompt]", required)
	}
}

func TestAskTool_Handle_PassesPromptThrough(t *testing.T) {
	gen := &fakeGenerator{answer: "42"}
	tool := NewAskTool(gen)

	result, err := tool.Handle(context.Background(), toolReq(map[string]interface{}{
		"prompt": "What is the answer?",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected tool error: %s", getResultText(result))
	}
	if got := getResultText(result); got != "42" {
		t.Errorf("result = %q, want %q", got, "42")
	}
	if gen.prompt != "What is the answer?" {
		t.Errorf("prompt = %q, want passthrough", gen.prompt)
	}
}

func TestAskTool_Handle_MissingPrompt(t *testing.T) {
	tool := NewAskTool(&fakeGenerator{})

	result, err := tool.Handle(context.Background(), toolReq(map[string]interface{}{
		"prompt": "   ",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected tool error for blank prompt")
	}
	if !strings.Contains(getResultText(result), "required") {
		t.Errorf("error text = %q, want mention of required", getResultText(result))
	}
}
