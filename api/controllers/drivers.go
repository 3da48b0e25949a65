package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/driesvermeulen/loadline-backend/api/responses"
	"github.com/driesvermeulen/loadline-backend/api/validators"
	"github.com/driesvermeulen/loadline-backend/internal/drivers"
	"github.com/driesvermeulen/loadline-backend/pkg/logger"
)

type createDriverRequest struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type renameDriverRequest struct {
	Name string `json:"name" validate:"required"`
}

type setDriverActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// CompanyCreateDriver registers a driver, optionally provisioning a login.
func CompanyCreateDriver(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createDriverRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), companyID, drivers.CreateInput{
			Name:  body.Name,
			Email: body.Email,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// CompanyListDrivers returns every driver on the company roster.
func CompanyListDrivers(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		roster, err := svc.List(r.Context(), companyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, roster)
	}
}

// CompanyRenameDriver updates a driver's display name.
func CompanyRenameDriver(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		driverID, err := validators.ParsePathUUID(chi.URLParam(r, "driverId"), "driverId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body renameDriverRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Rename(r.Context(), companyID, driverID, body.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// CompanySetDriverActive toggles whether a driver can receive assignments.
func CompanySetDriverActive(svc drivers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		driverID, err := validators.ParsePathUUID(chi.URLParam(r, "driverId"), "driverId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setDriverActiveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.SetActive(r.Context(), companyID, driverID, *body.Active)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
