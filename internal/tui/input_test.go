package tui

import (
	"strings"
	"testing"
)

func TestEditRuneAddCharacters(t *testing.T) {
	tests := []struct {
		name  string
		start string
		key   string
		want  string
	}{
		{"append to empty", "", "a", "a"},
		{"append letter", "ali", "c", "alic"},
		{"append digit", "user", "1", "user1"},
		{"append space", "hello", " ", "hello "},
		{"append special", "abc", "_", "abc_"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := editRune(tc.start, tc.key)
			if got != tc.want {
				t.Errorf("editRune(%q, %q) = %q, want %q", tc.start, tc.key, got, tc.want)
			}
		})
	}
}

func TestEditRuneBackspace(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"backspace on single char", "a", ""},
		{"backspace on longer string", "hello", "hell"},
		{"backspace on empty does nothing", "", ""},
		{"backspace removes whole rune", "hellé", "hell"},
		{"backspace removes emoji", "hello\U0001f600", "hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := editRune(tc.start, "backspace")
			if got != tc.want {
				t.Errorf("editRune(%q, 'backspace') = %q, want %q", tc.start, got, tc.want)
			}
		})
	}
}

func TestEditRuneIgnoresNonPrintableKeys(t *testing.T) {
	nonPrintable := []string{"enter", "esc", "up", "down", "ctrl+c", "ctrl+y", "tab", "shift+tab", "f1"}

	original := "hello"
	for _, key := range nonPrintable {
		t.Run(key, func(t *testing.T) {
			got := editRune(original, key)
			if got != original {
				t.Errorf("editRune(%q, %q) = %q, want unchanged %q", original, key, got, original)
			}
		})
	}
}

func TestEditRuneMaxInputLen(t *testing.T) {
	atLimit := strings.Repeat("a", maxInputLen)
	belowLimit := strings.Repeat("a", maxInputLen-1)

	if got := editRune(atLimit, "b"); got != atLimit {
		t.Errorf("at limit: accepted new rune, len=%d", len([]rune(got)))
	}
	if got := editRune(belowLimit, "b"); got != belowLimit+"b" {
		t.Errorf("below limit: rejected new rune")
	}
	if got := editRune(atLimit, "backspace"); got != atLimit[:len(atLimit)-1] {
		t.Errorf("at limit: backspace did not remove a rune")
	}
}

func TestInsertRunes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		runes string
		want  string
	}{
		{"typed rune", "ali", "c", "alic"},
		{"paste", "", "alice_42", "alice_42"},
		{"paste drops newlines", "", "alice\r\n", "alice"},
		{"paste clamped at limit", strings.Repeat("a", maxInputLen-3), "abcdef", strings.Repeat("a", maxInputLen-3) + "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := insertRunes(tc.start, []rune(tc.runes))
			if got != tc.want {
				t.Errorf("insertRunes(%q, %q) = %q, want %q", tc.start, tc.runes, got, tc.want)
			}
		})
	}
}

func TestTruncateToHeight(t *testing.T) {
	input := "line1\nline2\nline3\nline4\nline5\n"

	result := truncateToHeight(input, 3)
	if strings.Count(result, "\n") > 3 {
		t.Errorf("truncateToHeight(5 lines, 3) = %q", result)
	}
	if strings.Contains(result, "line4") {
		t.Errorf("truncateToHeight result should not contain line4: %q", result)
	}

	for _, max := range []int{0, -1, 10} {
		if got := truncateToHeight(input, max); got != input {
			t.Errorf("truncateToHeight(input, %d) = %q, want unchanged", max, got)
		}
	}
}
