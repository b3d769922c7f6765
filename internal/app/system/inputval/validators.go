package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldError is a single validation failure tied to a form field.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation failures in field declaration order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether validation produced any messages.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first validation message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All returns every message joined with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// ByField returns the errors as a FieldErrors map for per-field display.
func (r *Result) ByField() FieldErrors {
	var fe FieldErrors
	for _, e := range r.Errors {
		fe.Add(e.Field, e.Message)
	}
	return fe
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

// Validate checks the string fields of a struct against its `validate`
// tags. Supported rules: required, email, httpurl, slug, objectid, max=N.
// The `label` tag supplies the human-readable field name used in messages;
// the `form` tag (falling back to the Go field name) keys the error.
//
//	type form struct {
//	    Name  string `validate:"required,max=120" label:"Name"`
//	    Email string `validate:"required,email" label:"Email"`
//	}
func Validate(input any) *Result {
	res := &Result{}

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || field.Type.Kind() != reflect.String {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		key := field.Tag.Get("form")
		if key == "" {
			key = field.Name
		}
		value := v.Field(i).String()

		for _, rule := range strings.Split(rules, ",") {
			if msg := applyRule(rule, label, value); msg != "" {
				res.add(key, msg)
				break // one message per field
			}
		}
	}
	return res
}

func applyRule(rule, label, value string) string {
	switch {
	case rule == "required":
		if strings.TrimSpace(value) == "" {
			return label + " is required."
		}
	case rule == "email":
		if value != "" && !IsValidEmail(value) {
			return "A valid email address is required."
		}
	case rule == "httpurl":
		if value != "" && !IsValidHTTPURL(value) {
			return label + " must be an http:// or https:// URL."
		}
	case rule == "slug":
		if value != "" && !IsValidSlug(value) {
			return label + " may only contain lowercase letters, numbers, and hyphens."
		}
	case rule == "objectid":
		if value != "" && !IsValidObjectID(value) {
			return label + " is not a valid identifier."
		}
	case strings.HasPrefix(rule, "max="):
		n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
		if err == nil && utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	}
	return ""
}
