package service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		if got := excerpt("Politică de confidențialitate"); got != "Politică de confidențialitate" {
			t.Errorf("excerpt = %q", got)
		}
	})

	t.Run("truncation stays on a rune boundary", func(t *testing.T) {
		// Rune starts sit on odd byte offsets, so the limit falls mid-rune.
		text := "a" + strings.Repeat("ă", excerptMaxLen)

		got := excerpt(text)
		if len(got) > excerptMaxLen {
			t.Fatalf("len = %d, want <= %d", len(got), excerptMaxLen)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("excerpt produced invalid UTF-8: %q", got[len(got)-4:])
		}
		if len(got) != excerptMaxLen-1 {
			t.Errorf("len = %d, want %d (backed off one byte)", len(got), excerptMaxLen-1)
		}
	})
}
