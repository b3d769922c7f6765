// internal/app/features/organizations/handler.go

// Package organizations serves the filterable organization listing, the
// public organization pages, and the admin management screens.
package organizations

import (
	"github.com/dalemusser/connecthub/internal/app/directory"
	uierrors "github.com/dalemusser/connecthub/internal/app/features/errors"
	categorystore "github.com/dalemusser/connecthub/internal/app/store/categories"
	organizationstore "github.com/dalemusser/connecthub/internal/app/store/organizations"
	userstore "github.com/dalemusser/connecthub/internal/app/store/users"
	"go.uber.org/zap"
)

type Handler struct {
	Organizations *organizationstore.Store
	Categories    *categorystore.Store
	Users         *userstore.Store
	Directory     *directory.Service
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(orgs *organizationstore.Store, cats *categorystore.Store, users *userstore.Store, dir *directory.Service, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Organizations: orgs,
		Categories:    cats,
		Users:         users,
		Directory:     dir,
		ErrLog:        errLog,
		Log:           logger,
	}
}
