package docgen

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DownloadFilename builds a safe attachment name from a document title:
// anything outside letters, digits and whitespace is stripped, whitespace
// runs collapse to a single underscore, and the date is appended.
func DownloadFilename(name string, t time.Time) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Join(strings.Fields(b.String()), "_")
	return fmt.Sprintf("%s_%s.pdf", cleaned, t.Format("2006-01-02"))
}
