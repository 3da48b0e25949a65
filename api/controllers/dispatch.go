package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/driesvermeulen/loadline-backend/api/responses"
	"github.com/driesvermeulen/loadline-backend/api/validators"
	"github.com/driesvermeulen/loadline-backend/internal/dispatchsvc"
	"github.com/driesvermeulen/loadline-backend/pkg/logger"
)

// DispatchQueue returns the company's pending orders ranked by urgency.
func DispatchQueue(svc dispatchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		queue, err := svc.Queue(r.Context(), companyID, time.Now().UTC())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, queue)
	}
}

// DispatchRecommend ranks the company's drivers for one pending order.
func DispatchRecommend(svc dispatchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParsePathUUID(chi.URLParam(r, "orderId"), "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rec, err := svc.Recommend(r.Context(), companyID, orderID, time.Now().UTC())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rec)
	}
}

// DispatchAvailability reports the remaining capacity of every active driver.
func DispatchAvailability(svc dispatchsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := companyScope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		availability, err := svc.Availability(r.Context(), companyID, time.Now().UTC())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, availability)
	}
}
