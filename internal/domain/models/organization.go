// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization includes a case/diacritic-insensitive name field for
// search/sort and embeds the services it offers. The slug is the unique,
// URL-safe handle used in organization URLs.
type Organization struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Slug        string             `bson:"slug" json:"slug"` // unique; ^[a-z0-9-]+$, no edge hyphens
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"` // ← always stored
	Tagline     string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`

	// CategoryID is mandatory: every organization belongs to exactly one
	// category. That single-category model is why facet selection widens
	// rather than narrows results.
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`

	Services []Service `bson:"services,omitempty" json:"services,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Service is a single offering owned by an organization. Services live
// embedded on the organization document; they have no identity of their own.
type Service struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}
