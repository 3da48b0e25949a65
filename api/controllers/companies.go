package controllers

import (
	"net/http"

	"github.com/driesvermeulen/loadline-backend/api/responses"
	"github.com/driesvermeulen/loadline-backend/api/validators"
	"github.com/driesvermeulen/loadline-backend/internal/companies"
	"github.com/driesvermeulen/loadline-backend/pkg/logger"
)

// CompanyGetProfile returns the authenticated company's profile.
func CompanyGetProfile(svc companies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), companyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// CompanyUpdateProfile updates the authenticated company's profile.
func CompanyUpdateProfile(svc companies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body companies.UpdateCompanyInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), companyID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
