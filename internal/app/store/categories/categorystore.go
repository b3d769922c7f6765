// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"time"

	"github.com/dalemusser/connecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads the category reference data used to facet the organization
// listing. Categories are written only by Seed; the app never edits them.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("categories")}
}

// List returns every category sorted by name.
func (s *Store) List(ctx context.Context) ([]models.Category, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var cat models.Category
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// Seed inserts any of the given category names that do not yet exist.
// Existing categories are left untouched, so reseeding is safe.
func (s *Store) Seed(ctx context.Context, names []string) error {
	now := time.Now().UTC()
	for _, name := range names {
		if name == "" {
			continue
		}
		_, err := s.c.UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$setOnInsert": models.Category{
				ID:        primitive.NewObjectID(),
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			}},
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}
