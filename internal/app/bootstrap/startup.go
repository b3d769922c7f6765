// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/connecthub/internal/app/resources"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"github.com/dalemusser/connecthub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps.MongoDatabase, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}

	return nil
}

// ensureAdmin guarantees an admin account exists for the given email.
// An existing account is promoted; a missing one is created as a Google
// sign-in account (no password hash), so the admin's first login happens
// through OAuth rather than a shared bootstrap password.
func ensureAdmin(ctx context.Context, db *mongo.Database, email string, logger *zap.Logger) error {
	users := userstore.New(db)

	user, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if user.Role == "admin" {
			return nil
		}
		if err := users.PromoteToAdmin(ctx, user.ID); err != nil {
			logger.Error("admin promotion failed", zap.String("email", email), zap.Error(err))
			return err
		}
		logger.Info("promoted existing account to admin", zap.String("email", email))
		return nil

	case errors.Is(err, mongo.ErrNoDocuments):
		created, err := users.Create(ctx, models.User{
			FirstName: "Directory",
			LastName:  "Admin",
			Email:     email,
			Role:      "admin",
		})
		if err != nil {
			logger.Error("admin creation failed", zap.String("email", email), zap.Error(err))
			return err
		}
		logger.Info("created admin account",
			zap.String("email", email),
			zap.String("id", created.ID.Hex()))
		return nil

	default:
		return err
	}
}
