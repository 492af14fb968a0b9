// internal/util/util.go
package util

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9@%+=:,./_-]+$`)

// ShellQuote returns token quoted so a POSIX shell would read it back as a
// single word. Tokens made of safe characters pass through unchanged.
func ShellQuote(token string) string {
	if token == "" {
		return "''"
	}
	if shellSafe.MatchString(token) {
		return token
	}
	return "'" + strings.ReplaceAll(token, "'", `'"'"'`) + "'"
}

// ShellJoin renders a command token list as a single copy-pasteable line.
func ShellJoin(tokens []string) string {
	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		quoted = append(quoted, ShellQuote(token))
	}
	return strings.Join(quoted, " ")
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}
