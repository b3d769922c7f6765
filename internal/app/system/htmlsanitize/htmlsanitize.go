// Package htmlsanitize strips unsafe markup from user-supplied HTML
// before it is stored or rendered.
//
// Rich-text fields (organization descriptions, service descriptions) may
// carry formatting pasted from editors, so the policy allows common
// formatting, lists, tables, links, and images while removing anything
// that can execute script.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").OnElements("table", "thead", "tbody", "tr", "td", "th")
	p.AllowElements("u", "s", "sub", "sup", "mark", "hr", "br")
	return p
}

// Sanitize returns s with all disallowed tags and attributes removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and marks the result safe for template output.
// Only use this for content that is about to be rendered.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// StripTags removes all markup, leaving plain text. Used for fields that
// must never contain HTML, like names and taglines.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return bluemonday.StrictPolicy().Sanitize(s)
}

// IsPlainText reports whether s contains no HTML tags. A lone < or > does
// not count as markup.
func IsPlainText(s string) bool {
	lt := strings.IndexByte(s, '<')
	if lt == -1 {
		return true
	}
	return strings.IndexByte(s[lt:], '>') == -1
}

// PlainTextToHTML escapes plain text and wraps it in a paragraph,
// converting newlines to <br> so stored plain text renders with its line
// structure intact.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay renders stored content: plain text is escaped and
// paragraph-wrapped, HTML is sanitized. The result is safe to emit.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
