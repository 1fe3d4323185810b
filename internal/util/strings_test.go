package util

import "testing"

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  API-URL "); got != "api-url" {
		t.Errorf("NormalizeKey = %q, want %q", got, "api-url")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"status", 10, "status"},
		{"say Restart in 5 minutes", 10, "say Res..."},
		{"héllo wörld", 8, "héllo..."},
		{"abcdef", 2, "ab"},
		{"abcdef", 0, "abcdef"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
