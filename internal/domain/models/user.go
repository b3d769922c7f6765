// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSiteName is the site name used when none is configured.
const DefaultSiteName = "ConnectHub"

// User represents a directory member (and, for role "admin", an
// administrator). Every user is a member of the directory; the role only
// controls what they may manage.
//
// A user is either affiliated (OrganizationID non-nil) or unaffiliated
// (OrganizationID nil). The two states are mutually exclusive and together
// cover the whole member set; the directory engine relies on that split.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	FirstNameCI string             `bson:"first_name_ci" json:"first_name_ci"` // lowercase, diacritics-stripped
	LastName    string             `bson:"last_name" json:"last_name"`
	LastNameCI  string             `bson:"last_name_ci" json:"last_name_ci"` // lowercase, diacritics-stripped
	Email       string             `bson:"email" json:"email"`               // unique, stored lowercase
	JobTitle    string             `bson:"job_title,omitempty" json:"job_title,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	LinkedInURL string             `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	XURL        string             `bson:"x_url,omitempty" json:"x_url,omitempty"`

	Role   string `bson:"role" json:"role"`     // admin | member
	Status string `bson:"status" json:"status"` // active | disabled

	// PasswordHash is a bcrypt hash; empty for users who sign in with
	// an external identity provider (Google).
	PasswordHash  string `bson:"password_hash,omitempty" json:"-"`
	GoogleSubject string `bson:"google_subject,omitempty" json:"-"`

	// OrganizationID is a weak reference to at most one Organization.
	// Nil means the member is unaffiliated.
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty" json:"organization_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName combines the given and family name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Affiliated reports whether the user carries an organization reference.
func (u User) Affiliated() bool {
	return u.OrganizationID != nil
}
