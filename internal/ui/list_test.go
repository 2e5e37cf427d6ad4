package ui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays intact", "Gym", 10, "Gym"},
		{"exact length stays intact", "abcdefghij", 10, "abcdefghij"},
		{"long is cut with ellipsis", "a very long task title", 10, "a very ..."},
		{"multi-byte title", "Répétition générale du spectacle", 10, "Répétit..."},
		{"cut lands inside a rune run", "日本語のタイトルです長い", 10, "日本語のタイト..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.max, got)
			}
		})
	}
}
