// Package inputval validates user-submitted form fields and collects
// per-field error messages for re-rendering forms.
package inputval

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldErrors maps a form field name to the message shown next to it.
// The zero value is ready to use via Add.
type FieldErrors map[string]string

// Add records a message for a field. The first message for a field wins;
// later ones for the same field are dropped so the user sees the most
// fundamental problem.
func (fe *FieldErrors) Add(field, msg string) {
	if *fe == nil {
		*fe = FieldErrors{}
	}
	if _, exists := (*fe)[field]; !exists {
		(*fe)[field] = msg
	}
}

// Has reports whether the field already carries an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// IsValidEmail validates email format using RFC 5322 address parsing,
// then applies practical restrictions: no display names, no leading or
// trailing dots, no consecutive dots.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms like "User <user@example.com>".
	if addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	local, domain := email[:at], email[at+1:]

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "..") || strings.Contains(domain, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// slugRe matches lowercase letters, digits and hyphens. Edge hyphens are
// checked separately so single-character slugs remain valid.
var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s is a usable URL handle: lowercase
// alphanumerics and hyphens only, no leading or trailing hyphen.
func IsValidSlug(s string) bool {
	if s == "" || !slugRe.MatchString(s) {
		return false
	}
	return !strings.HasPrefix(s, "-") && !strings.HasSuffix(s, "-")
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsValidObjectID reports whether s is a well-formed Mongo ObjectID hex string.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
