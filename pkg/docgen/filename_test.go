package docgen

import (
	"testing"
	"time"
)

func TestDownloadFilename(t *testing.T) {
	day := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain name",
			in:   "Model Factură",
			want: "Model_Factură_2026-03-14.pdf",
		},
		{
			name: "punctuation stripped",
			in:   "Contract Prestări-Servicii!",
			want: "Contract_PrestăriServicii_2026-03-14.pdf",
		},
		{
			name: "repeated whitespace collapsed",
			in:   "  Fișa   Postului  ",
			want: "Fișa_Postului_2026-03-14.pdf",
		},
		{
			name: "digits kept",
			in:   "Declarația 112",
			want: "Declarația_112_2026-03-14.pdf",
		},
		{
			name: "empty name",
			in:   "",
			want: "_2026-03-14.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DownloadFilename(tt.in, day); got != tt.want {
				t.Errorf("DownloadFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
