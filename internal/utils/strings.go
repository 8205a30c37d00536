package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// StripQuotes removes one pair of literal double quotes wrapping an identifier.
// The raw dataset stores booking/customer ids as `"CNR123"`, the relational
// table stores them bare; filter inputs and join keys must compare equal either way.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
