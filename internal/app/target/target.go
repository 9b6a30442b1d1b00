// Package target normalizes and validates the requested domain before any
// dork generation happens.
package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/net/idna"
)

// ErrInvalidDomain is the single client-facing failure kind: a missing or
// malformed target domain.
var ErrInvalidDomain = errors.New("invalid domain")

const maxHostnameLength = 253

// Normalize lowercases the input, strips an http(s) scheme, a port and
// trailing slashes/dots, and converts IDN labels to punycode.
func Normalize(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")

	// Drop any path component and port.
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	if i := strings.LastIndexByte(d, ':'); i >= 0 {
		d = d[:i]
	}
	d = strings.Trim(d, ".")

	if ascii, err := idna.Lookup.ToASCII(d); err == nil {
		d = ascii
	}

	return d
}

// Validate checks hostname shape: dot-separated labels of alphanumerics and
// hyphens, 1-63 chars each, no leading/trailing hyphen, at most 253 chars
// total. Single-label names are rejected; a dork needs a real domain.
func Validate(domain string) error {
	if domain == "" {
		return fmt.Errorf("%w: empty domain", ErrInvalidDomain)
	}
	if len(domain) > maxHostnameLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidDomain, maxHostnameLength)
	}
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("%w: %q has no dot", ErrInvalidDomain, domain)
	}
	if !govalidator.IsDNSName(domain) {
		return fmt.Errorf("%w: %q is not a valid hostname", ErrInvalidDomain, domain)
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return fmt.Errorf("%w: %q has an empty label", ErrInvalidDomain, domain)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return fmt.Errorf("%w: label %q starts or ends with a hyphen", ErrInvalidDomain, label)
		}
	}
	return nil
}

// NormalizeAndValidate is the single entry point used by the HTTP handler and
// the CLI. Returns the normalized domain or ErrInvalidDomain.
func NormalizeAndValidate(domain string) (string, error) {
	d := Normalize(domain)
	if err := Validate(d); err != nil {
		return "", err
	}
	return d, nil
}
