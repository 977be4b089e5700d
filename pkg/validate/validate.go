// Package validate holds the pure form-field checks shared by the capture
// flows. No I/O, no side effects: callers collect every failure before
// touching the store so all errors can be rendered at once.
package validate

import (
	"net/url"
	"regexp"
	"strings"
)

// Permissive single-@ structural check, not full RFC 5322 validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Optional leading +, optional parenthesized groups, digits with
// space/hyphen/dot separators. Applied with inner whitespace stripped.
var phonePattern = regexp.MustCompile(`^[\+]?[(]?[0-9]{1,4}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,9}$`)

func Email(email string) bool {
	return emailPattern.MatchString(email)
}

func Phone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// URL accepts only absolute http/https URLs.
func URL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeEmail lowercases and trims an email for storage and duplicate
// grouping.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone trims a phone number; beyond that phones are compared
// verbatim.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
