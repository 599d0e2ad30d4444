// Package shared provides common utility functions used across multiple
// packages in the vm-portmap codebase.
package shared

import "strings"

// SplitCSV splits a comma-separated value into trimmed tokens. Empty
// tokens are preserved so callers can report them as malformed input.
func SplitCSV(value string) []string {
	tokens := strings.Split(value, ",")
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}
	return tokens
}
