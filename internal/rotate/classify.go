package rotate

import "strings"

// Class is the outcome of inspecting a failed attempt's error message.
type Class int

const (
	// Fatal failures propagate immediately; switching keys would not help.
	Fatal Class = iota
	// Retryable failures drive rotation to the next key in the pool.
	Retryable
)

// retryableMarkers is the allowlist of substrings that mark an upstream
// failure as retryable. Matching is case-sensitive: these are the exact
// status codes and phrases the Gemini API returns for throttling,
// quota exhaustion, invalid single keys, and overload. Anything not on
// this list is fatal — unknown failure modes must not stall the caller
// for the full deadline.
var retryableMarkers = []string{
	"429",
	"Too Many Requests",
	"quota",
	"rate limit",
	"exceeded your current quota",
	"API key not valid",
	"503",
	"Service Unavailable",
	"overloaded",
	"Please try again later",
}

// Classify inspects an error message and decides whether rotating to
// the next key is worth trying. It is a pure function so it can be
// tested without any network client.
func Classify(msg string) Class {
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return Retryable
		}
	}
	return Fatal
}

// Reason maps a retryable error message to a short human-readable
// rotation reason for logs. Callers must only pass messages already
// classified Retryable; anything unrecognized reads as a rate limit.
func Reason(msg string) string {
	switch {
	case strings.Contains(msg, "API key not valid"):
		return "invalid key"
	case strings.Contains(msg, "503"),
		strings.Contains(msg, "Service Unavailable"),
		strings.Contains(msg, "overloaded"),
		strings.Contains(msg, "Please try again later"):
		return "overloaded"
	default:
		return "rate limit"
	}
}
