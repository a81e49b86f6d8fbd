package textmatch

import (
	"strings"
)

// Normalize folds case, trims, and collapses internal whitespace runs
// to single spaces. Empty and whitespace-only input come back as "".
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}

	return strings.Join(fields, " ")
}

// Tokenize splits normalized text into comparable tokens. A blank
// input yields nil, which callers treat as "no query".
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	return strings.Split(normalized, " ")
}
