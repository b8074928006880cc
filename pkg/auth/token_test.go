package auth

import (
	"net/http/httptest"
	"testing"
)

func TestNewToken_Unique(t *testing.T) {
	t.Parallel()

	a := NewToken()
	b := NewToken()
	if a == "" || b == "" {
		t.Fatalf("expected non-empty tokens, got %q and %q", a, b)
	}
	if a == b {
		t.Fatalf("expected distinct tokens, both were %q", a)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc123", "abc123", false},
		{"lowercase scheme", "bearer abc123", "abc123", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"no token", "Bearer", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			got, err := ExtractTokenFromHeader(r)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("token mismatch: got %q want %q", got, tt.want)
			}
		})
	}
}
