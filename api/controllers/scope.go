package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/driesvermeulen/loadline-backend/api/middleware"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
)

// companyScope resolves the authenticated company ID or fails with 403.
func companyScope(r *http.Request) (uuid.UUID, error) {
	raw := middleware.CompanyIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "company scope required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "company scope required")
	}
	return id, nil
}

func customerScope(r *http.Request) (uuid.UUID, error) {
	raw := middleware.CustomerIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "customer scope required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "customer scope required")
	}
	return id, nil
}

func driverScope(r *http.Request) (uuid.UUID, error) {
	raw := middleware.DriverIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "driver scope required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "driver scope required")
	}
	return id, nil
}
