// Package keys resolves raw API-key configuration into an ordered pool.
//
// The canonical source is a single environment value that may hold one
// key or a comma-separated list. Resolution never fails: malformed
// input degrades to a smaller (possibly empty) pool.
package keys

import "strings"

// Resolve turns a raw configuration value into an ordered pool of
// non-empty API keys.
//
// Rules:
//   - empty or whitespace-only input yields an empty pool
//   - comma-separated input is split, each part trimmed, empty parts dropped
//   - relative order is preserved; duplicates are kept as-is (a repeated
//     key is legal and simply gets tried more often)
func Resolve(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	pool := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		pool = append(pool, p)
	}
	if len(pool) == 0 {
		return nil
	}
	return pool
}
