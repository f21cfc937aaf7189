package tools

import (
	"fmt"
	"strings"
)

// analysisPrompt renders the codebase-analysis prompt. When the caller
// asks a specific question it is answered against the sources;
// otherwise the model produces a general architecture review.
func analysisPrompt(question, sources string) string {
	var sb strings.Builder
	sb.WriteString("You are a senior software engineer analyzing a codebase.\n\n")
	if question != "" {
		sb.WriteString("Answer the following question about the codebase below. ")
		sb.WriteString("Reference concrete files and symbols in your answer.\n\n")
		sb.WriteString("Question: ")
		sb.WriteString(question)
		sb.WriteString("\n\n")
	} else {
		sb.WriteString("Describe the architecture of the codebase below: ")
		sb.WriteString("main components and their responsibilities, how data flows between them, ")
		sb.WriteString("notable patterns, and anything that looks fragile or inconsistent.\n\n")
	}
	sb.WriteString("Codebase:\n\n")
	sb.WriteString(sources)
	return sb.String()
}

// reviewPrompt renders the single-file review prompt.
func reviewPrompt(path, focus, content string) string {
	var sb strings.Builder
	sb.WriteString("You are a senior software engineer reviewing a single file.\n\n")
	if focus != "" {
		sb.WriteString("Focus the review on: ")
		sb.WriteString(focus)
		sb.WriteString("\n\n")
	} else {
		sb.WriteString("Review for correctness, readability, and error handling. ")
		sb.WriteString("Point at specific lines and suggest concrete fixes.\n\n")
	}
	sb.WriteString(fmt.Sprintf("--- %s ---\n%s\n", path, content))
	return sb.String()
}
