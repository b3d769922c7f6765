// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/connecthub/internal/app/system/normalize"
	"github.com/dalemusser/connecthub/internal/app/system/status"
	"github.com/dalemusser/connecthub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "admin"|"member"`)
	errBadStatus      = errors.New(`status must be "active"|"disabled"`)
)

// rosterSort orders users by folded family name, then given name, then _id
// so that pages render in a stable order across requests.
var rosterSort = bson.D{
	{Key: "last_name_ci", Value: 1},
	{Key: "first_name_ci", Value: 1},
	{Key: "_id", Value: 1},
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByGoogleSubject looks up a user by the stable subject identifier from
// Google sign-in. Returns mongo.ErrNoDocuments if no account is linked.
func (s *Store) GetByGoogleSubject(ctx context.Context, sub string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"google_subject": sub}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FirstName = normalize.Name(u.FirstName)
	u.FirstNameCI = text.Fold(u.FirstName)
	u.LastName = normalize.Name(u.LastName)
	u.LastNameCI = text.Fold(u.LastName)
	u.Email = normalize.Email(u.Email)
	if u.Status == "" {
		u.Status = status.Active
	}

	switch u.Role {
	case "admin", "member":
		// ok
	default:
		return models.User{}, errBadRole
	}

	if !status.IsValid(u.Status) {
		return models.User{}, errBadStatus
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// ProfileUpdate holds the fields a member may change on their own profile.
// OrganizationID is a pointer-to-pointer so the caller can distinguish
// "leave unchanged" (nil) from "clear the affiliation" (*nil).
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	JobTitle       string
	ImageURL       string
	LinkedInURL    string
	XURL           string
	OrganizationID **primitive.ObjectID
}

// UpdateProfile updates a user's profile fields and refreshes UpdatedAt.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) error {
	set := bson.M{
		"first_name":    normalize.Name(upd.FirstName),
		"first_name_ci": text.Fold(upd.FirstName),
		"last_name":     normalize.Name(upd.LastName),
		"last_name_ci":  text.Fold(upd.LastName),
		"job_title":     upd.JobTitle,
		"image_url":     upd.ImageURL,
		"linkedin_url":  upd.LinkedInURL,
		"x_url":         upd.XURL,
		"updated_at":    time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if upd.OrganizationID != nil {
		if *upd.OrganizationID == nil {
			update["$unset"] = bson.M{"organization_id": ""}
		} else {
			set["organization_id"] = **upd.OrganizationID
		}
	}

	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// PromoteToAdmin grants the admin role to an existing account.
func (s *Store) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"role":       "admin",
			"updated_at": time.Now().UTC(),
		},
	})
	return err
}

// UpdatePassword replaces the stored bcrypt hash.
func (s *Store) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"password_hash": hash,
			"updated_at":    time.Now().UTC(),
		},
	})
	return err
}

// LinkGoogleSubject records the stable Google subject identifier on the
// user so future sign-ins resolve without an email lookup.
func (s *Store) LinkGoogleSubject(ctx context.Context, id primitive.ObjectID, sub string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"google_subject": sub,
			"updated_at":     time.Now().UTC(),
		},
	})
	return err
}

// DeleteMember deletes a user by ID, but only if they have role="member".
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteMember(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "role": "member"})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ClearOrganization detaches every member of the given organization,
// moving them to the unaffiliated partition. Used when an organization is
// deleted so no user is left pointing at a missing document.
func (s *Store) ClearOrganization(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateMany(ctx,
		bson.M{"organization_id": orgID},
		bson.M{
			"$unset": bson.M{"organization_id": ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// EmailExistsForOther checks if an email already exists for a user other than the given ID.
func (s *Store) EmailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"email": normalize.Email(email),
		"_id":   bson.M{"$ne": excludeID},
	}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// affiliationFilter translates the caller's affiliation requirement into a
// Mongo filter. An absent organization_id field and an explicit null both
// count as unaffiliated.
func affiliationFilter(affiliated *bool) bson.M {
	if affiliated == nil {
		return bson.M{}
	}
	if *affiliated {
		return bson.M{"organization_id": bson.M{"$exists": true, "$ne": nil}}
	}
	return bson.M{"$or": bson.A{
		bson.M{"organization_id": bson.M{"$exists": false}},
		bson.M{"organization_id": nil},
	}}
}

// List returns users in roster order. Pass nil for every user, or a bool
// to restrict to affiliated (true) or unaffiliated (false) members.
func (s *Store) List(ctx context.Context, affiliated *bool) ([]models.User, error) {
	cur, err := s.c.Find(ctx, affiliationFilter(affiliated), options.Find().SetSort(rosterSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of users matching the affiliation requirement.
func (s *Store) Count(ctx context.Context, affiliated *bool) (int64, error) {
	return s.c.CountDocuments(ctx, affiliationFilter(affiliated))
}

// ListByOrganization returns the members affiliated with one organization
// in roster order.
func (s *Store) ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{"organization_id": orgID}, options.Find().SetSort(rosterSort))
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByName returns users whose given or family name contains the query
// as a substring, matched against the folded *_ci fields. The query is
// folded but never trimmed; interior and edge whitespace are significant.
func (s *Store) FindByName(ctx context.Context, query string) ([]models.User, error) {
	pattern := regexp.QuoteMeta(text.Fold(query))
	re := primitive.Regex{Pattern: pattern}
	filter := bson.M{"$or": bson.A{
		bson.M{"first_name_ci": re},
		bson.M{"last_name_ci": re},
	}}

	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(rosterSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
