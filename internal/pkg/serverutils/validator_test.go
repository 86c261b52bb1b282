package serverutils

import (
	"strings"
	"testing"
)

func TestValidateRequest(t *testing.T) {
	type sample struct {
		Title   string `validate:"required"`
		DueDate string `validate:"omitempty,datetime=2006-01-02"`
		Status  string `validate:"omitempty,oneof=pending in_progress completed"`
	}

	tests := []struct {
		name     string
		req      sample
		wantErr  bool
		wantPart string
	}{
		{
			name: "valid request",
			req:  sample{Title: "Declarația 112", DueDate: "2026-01-25", Status: "pending"},
		},
		{
			name:     "missing required field",
			req:      sample{DueDate: "2026-01-25"},
			wantErr:  true,
			wantPart: "field 'Title' failed on 'required'",
		},
		{
			name:     "malformed date",
			req:      sample{Title: "x", DueDate: "25.01.2026"},
			wantErr:  true,
			wantPart: "failed on 'datetime'",
		},
		{
			name:     "value outside enum",
			req:      sample{Title: "x", Status: "done"},
			wantErr:  true,
			wantPart: "failed on 'oneof'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q missing %q", err, tt.wantPart)
			}
		})
	}
}
