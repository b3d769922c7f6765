// internal/app/features/members/handler.go

// Package members serves the member roster and the admin screens for
// creating, editing, and removing members.
package members

import (
	"github.com/dalemusser/connecthub/internal/app/directory"
	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"go.uber.org/zap"
)

type Handler struct {
	Users         *userstore.Store
	Organizations *organizationstore.Store
	Directory     *directory.Service
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(users *userstore.Store, orgs *organizationstore.Store, dir *directory.Service, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:         users,
		Organizations: orgs,
		Directory:     dir,
		ErrLog:        errLog,
		Log:           logger,
	}
}
