// internal/testutil/http.go
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/connecthub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser is a lightweight signed-in user for handler tests.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// AdminUser returns a test user with the admin role.
func AdminUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Ada Admin",
		Email: "ada@example.com",
		Role:  "admin",
	}
}

// MemberUser returns a test user with the member role.
func MemberUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Mel Member",
		Email: "mel@example.com",
		Role:  "member",
	}
}

// WithUser attaches the test user to the request context, the way the
// session middleware would for a signed-in request.
func WithUser(r *http.Request, u TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
}

// NewRequest builds an HTML-accepting test request.
func NewRequest(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Accept", "text/html")
	if method == http.MethodPost {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return r
}

// NewAuthenticatedRequest builds a test request with the user signed in.
func NewAuthenticatedRequest(method, target string, body io.Reader, u TestUser) *http.Request {
	return WithUser(NewRequest(method, target, body), u)
}

// ResponseRecorder wraps httptest.ResponseRecorder with assertion helpers.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
	t *testing.T
}

// NewRecorder returns a recorder bound to the test for assertions.
func NewRecorder(t *testing.T) *ResponseRecorder {
	t.Helper()
	return &ResponseRecorder{ResponseRecorder: httptest.NewRecorder(), t: t}
}

// AssertStatus fails the test when the response code differs.
func (rr *ResponseRecorder) AssertStatus(want int) {
	rr.t.Helper()
	if rr.Code != want {
		rr.t.Errorf("status = %d, want %d; body: %s", rr.Code, want, rr.Body.String())
	}
}

// AssertRedirect fails the test unless the response redirects to location.
func (rr *ResponseRecorder) AssertRedirect(location string) {
	rr.t.Helper()
	if rr.Code < 300 || rr.Code > 399 {
		rr.t.Errorf("status = %d, want a redirect", rr.Code)
		return
	}
	if got := rr.Header().Get("Location"); got != location {
		rr.t.Errorf("redirect location = %q, want %q", got, location)
	}
}

// AssertContains fails the test when the body lacks the substring.
func (rr *ResponseRecorder) AssertContains(substr string) {
	rr.t.Helper()
	if !strings.Contains(rr.Body.String(), substr) {
		rr.t.Errorf("body does not contain %q", substr)
	}
}
