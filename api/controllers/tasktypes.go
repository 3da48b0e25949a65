package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/driesvermeulen/loadline-backend/api/responses"
	"github.com/driesvermeulen/loadline-backend/api/validators"
	"github.com/driesvermeulen/loadline-backend/internal/tasktypes"
	"github.com/driesvermeulen/loadline-backend/pkg/logger"
)

type createTaskTypeRequest struct {
	Name          string  `json:"name" validate:"required"`
	TimePer1000Kg float64 `json:"time_per_1000_kg" validate:"required,gt=0"`
}

type updateTaskTypeRequest struct {
	Name          *string  `json:"name,omitempty"`
	TimePer1000Kg *float64 `json:"time_per_1000_kg,omitempty" validate:"omitempty,gt=0"`
}

// CompanyCreateTaskType adds a handling-rate entry for the company.
func CompanyCreateTaskType(svc tasktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createTaskTypeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), companyID, tasktypes.CreateInput{
			Name:          body.Name,
			TimePer1000Kg: body.TimePer1000Kg,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// CompanyListTaskTypes returns the company's task types.
func CompanyListTaskTypes(svc tasktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), companyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// CompanyUpdateTaskType renames or reprices a task type.
func CompanyUpdateTaskType(svc tasktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		taskTypeID, err := validators.ParsePathUUID(chi.URLParam(r, "taskTypeId"), "taskTypeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateTaskTypeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), companyID, taskTypeID, tasktypes.UpdateInput{
			Name:          body.Name,
			TimePer1000Kg: body.TimePer1000Kg,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// CompanyDeleteTaskType removes a task type from the rate table.
func CompanyDeleteTaskType(svc tasktypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		taskTypeID, err := validators.ParsePathUUID(chi.URLParam(r, "taskTypeId"), "taskTypeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), companyID, taskTypeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
