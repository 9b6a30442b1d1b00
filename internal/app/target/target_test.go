package target

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "EXAMPLE.COM", "example.com"},
		{"https scheme", "https://example.com", "example.com"},
		{"http scheme", "http://example.com", "example.com"},
		{"trailing slash", "example.com/", "example.com"},
		{"path", "example.com/login?id=1", "example.com"},
		{"port", "example.com:8443", "example.com"},
		{"scheme port path", "https://Example.com:443/admin/", "example.com"},
		{"surrounding whitespace", "  example.com  ", "example.com"},
		{"trailing dot", "example.com.", "example.com"},
		{"idn to punycode", "bücher.example", "xn--bcher-kva.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "example.com", false},
		{"valid subdomain", "api.staging.example.com", false},
		{"valid hyphen", "my-site.example.co.uk", false},
		{"empty", "", true},
		{"no dot", "localhost", true},
		{"too long", strings.Repeat("a", 60) + "." + strings.Repeat("b", 60) + "." + strings.Repeat("c", 60) + "." + strings.Repeat("d", 60) + "." + strings.Repeat("e", 20), true},
		{"leading hyphen label", "-bad.example.com", true},
		{"trailing hyphen label", "bad-.example.com", true},
		{"empty label", "bad..example.com", true},
		{"spaces inside", "exa mple.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDomain) {
				t.Errorf("Validate(%q) error = %v, want ErrInvalidDomain", tt.in, err)
			}
		})
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	got, err := NormalizeAndValidate("https://Example.COM/path")
	if err != nil {
		t.Fatalf("NormalizeAndValidate() unexpected error: %v", err)
	}
	if got != "example.com" {
		t.Errorf("NormalizeAndValidate() = %q, want %q", got, "example.com")
	}

	if _, err := NormalizeAndValidate("   "); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("NormalizeAndValidate(blank) error = %v, want ErrInvalidDomain", err)
	}
	if _, err := NormalizeAndValidate("nodot"); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("NormalizeAndValidate(nodot) error = %v, want ErrInvalidDomain", err)
	}
}
