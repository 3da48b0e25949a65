package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/driesvermeulen/loadline-backend/api/controllers"
	"github.com/driesvermeulen/loadline-backend/api/middleware"
	"github.com/driesvermeulen/loadline-backend/internal/auth"
	"github.com/driesvermeulen/loadline-backend/internal/companies"
	"github.com/driesvermeulen/loadline-backend/internal/customers"
	"github.com/driesvermeulen/loadline-backend/internal/dispatchsvc"
	"github.com/driesvermeulen/loadline-backend/internal/drivers"
	"github.com/driesvermeulen/loadline-backend/internal/orders"
	"github.com/driesvermeulen/loadline-backend/internal/tasktypes"
	"github.com/driesvermeulen/loadline-backend/pkg/auth/session"
	"github.com/driesvermeulen/loadline-backend/pkg/config"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	"github.com/driesvermeulen/loadline-backend/pkg/logger"
	"github.com/driesvermeulen/loadline-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              pinger
	Redis           *redis.Client
	SessionManager  sessionManager
	AuthService     auth.Service
	RegisterService auth.RegisterService
	CompanyService  companies.Service
	CustomerService customers.Service
	DriverService   drivers.Service
	TaskTypeService tasktypes.Service
	OrderService    orders.Service
	DispatchService dispatchsvc.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, d.Redis))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).Post("/login", controllers.AuthLogin(d.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, d.Redis, logg)).Post("/register/customer", controllers.AuthRegisterCustomer(d.RegisterService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, d.Redis, logg)).Post("/register/company", controllers.AuthRegisterCompany(d.RegisterService, logg))
		r.Post("/refresh", controllers.AuthRefresh(d.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, d.SessionManager, logg)).Post("/logout", controllers.AuthLogout(d.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, d.SessionManager, logg))

		r.Route("/company", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleCompany), logg))

			r.Get("/me", controllers.CompanyGetProfile(d.CompanyService, logg))
			r.Put("/me", controllers.CompanyUpdateProfile(d.CompanyService, logg))

			r.Route("/drivers", func(r chi.Router) {
				r.Get("/", controllers.CompanyListDrivers(d.DriverService, logg))
				r.Post("/", controllers.CompanyCreateDriver(d.DriverService, logg))
				r.Patch("/{driverId}", controllers.CompanyRenameDriver(d.DriverService, logg))
				r.Post("/{driverId}/active", controllers.CompanySetDriverActive(d.DriverService, logg))
			})

			r.Route("/task-types", func(r chi.Router) {
				r.Get("/", controllers.CompanyListTaskTypes(d.TaskTypeService, logg))
				r.Post("/", controllers.CompanyCreateTaskType(d.TaskTypeService, logg))
				r.Patch("/{taskTypeId}", controllers.CompanyUpdateTaskType(d.TaskTypeService, logg))
				r.Delete("/{taskTypeId}", controllers.CompanyDeleteTaskType(d.TaskTypeService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.CompanyListOrders(d.OrderService, logg))
				r.Get("/{orderId}", controllers.CompanyOrderDetail(d.OrderService, logg))
				r.Post("/{orderId}/accept", controllers.CompanyAcceptOrder(d.OrderService, logg))
				r.Post("/{orderId}/reject", controllers.CompanyRejectOrder(d.OrderService, logg))
				r.Post("/{orderId}/complete", controllers.CompanyCompleteOrder(d.OrderService, logg))
			})

			r.Route("/dispatch", func(r chi.Router) {
				r.Get("/queue", controllers.DispatchQueue(d.DispatchService, logg))
				r.Get("/availability", controllers.DispatchAvailability(d.DispatchService, logg))
				r.Get("/orders/{orderId}/recommendation", controllers.DispatchRecommend(d.DispatchService, logg))
			})
		})

		r.Route("/customer", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleCustomer), logg))

			r.Get("/me", controllers.CustomerGetProfile(d.CustomerService, logg))
			r.Put("/me", controllers.CustomerUpdateProfile(d.CustomerService, logg))

			r.Route("/addresses", func(r chi.Router) {
				r.Get("/", controllers.CustomerListAddresses(d.CustomerService, logg))
				r.Post("/", controllers.CustomerAddAddress(d.CustomerService, logg))
				r.Delete("/{addressId}", controllers.CustomerRemoveAddress(d.CustomerService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.CustomerCreateOrder(d.OrderService, logg))
				r.Get("/reorder-suggestions", controllers.CustomerReorderSuggestions(d.OrderService, logg))
			})
		})

		r.Route("/driver", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleDriver), logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.DriverAssignedOrders(d.OrderService, logg))
				r.Post("/{orderId}/complete", controllers.DriverCompleteOrder(d.OrderService, logg))
			})
		})
	})

	return r
}
