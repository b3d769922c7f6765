// internal/app/features/profile/handler.go

// Package profile serves the signed-in member's own profile: a summary
// page, self-service edits to the display fields, and password changes
// for password accounts.
package profile

import (
	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"go.uber.org/zap"
)

type Handler struct {
	Users         *userstore.Store
	Organizations *organizationstore.Store
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(users *userstore.Store, orgs *organizationstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:         users,
		Organizations: orgs,
		ErrLog:        errLog,
		Log:           logger,
	}
}
