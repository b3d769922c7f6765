// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	categorystore "github.com/dalemusser/connecthub/internal/app/store/categories"
	"github.com/dalemusser/connecthub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// defaultCategories seeds the facet vocabulary on a fresh database.
// Seeding is insert-if-missing, so renames and additions made through
// the database later are preserved across restarts.
var defaultCategories = []string{
	"Consulting",
	"Education",
	"Finance",
	"Healthcare",
	"Legal",
	"Nonprofit",
	"Technology",
}

// EnsureSchema creates indexes and seeds the category vocabulary.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("index setup failed", zap.Error(err))
		return err
	}

	if err := categorystore.New(deps.MongoDatabase).Seed(ctx, defaultCategories); err != nil {
		logger.Error("category seeding failed", zap.Error(err))
		return err
	}

	return nil
}
