package tools

import (
	"strings"
	"testing"
)

func TestAnalysisPrompt_WithQuestion(t *testing.T) {
	p := analysisPrompt("Where is the entrypoint?", "--- main.go ---\npackage main\n")

	for _, want := range []string{
		"Question: Where is the entrypoint?",
		"--- main.go ---",
		"package main",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(p, "Describe the architecture") {
		t.Error("question prompt must not include the general-review framing")
	}
}

func TestAnalysisPrompt_GeneralReview(t *testing.T) {
	p := analysisPrompt("", "--- a.go ---\npackage a\n")

	if !strings.Contains(p, "Describe the architecture") {
		t.Error("prompt missing general-review framing")
	}
	if strings.Contains(p, "Question:") {
		t.Error("general-review prompt must not include a question section")
	}
	if !strings.Contains(p, "--- a.go ---") {
		t.Error("prompt missing source blob")
	}
}

func TestReviewPrompt_WithFocus(t *testing.T) {
	p := reviewPrompt("handler.go", "error handling", "func Handle() error { return nil }")

	for _, want := range []string{
		"Focus the review on: error handling",
		"--- handler.go ---",
		"func Handle() error",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestReviewPrompt_DefaultFocus(t *testing.T) {
	p := reviewPrompt("util.go", "", "package util\n")

	if !strings.Contains(p, "correctness, readability, and error handling") {
		t.Error("prompt missing default review criteria")
	}
	if strings.Contains(p, "Focus the review on") {
		t.Error("default prompt must not include a focus section")
	}
}
