// internal/util/util_test.go
package util

import (
	"testing"
)

func TestShellQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain token", in: "llama-benchy", want: "llama-benchy"},
		{name: "url token", in: "http://localhost:8000/v1", want: "http://localhost:8000/v1"},
		{name: "empty token", in: "", want: "''"},
		{name: "embedded space", in: "two words", want: "'two words'"},
		{name: "embedded quote", in: "it's", want: `'it'"'"'s'`},
		{name: "shell metachar", in: "a;b", want: "'a;b'"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShellQuote(tt.in); got != tt.want {
				t.Fatalf("ShellQuote(%q)=%q want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShellJoin(t *testing.T) {
	t.Parallel()

	tokens := []string{"llama-benchy", "--base-url", "http://localhost:8080/v1", "--save-result", "out file.md"}
	want := "llama-benchy --base-url http://localhost:8080/v1 --save-result 'out file.md'"

	if got := ShellJoin(tokens); got != want {
		t.Fatalf("ShellJoin mismatch\nwant: %s\ngot:  %s", want, got)
	}

	if got := ShellJoin(nil); got != "" {
		t.Fatalf("ShellJoin(nil)=%q want empty", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
