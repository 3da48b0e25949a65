package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/driesvermeulen/loadline-backend/api/routes"
	"github.com/driesvermeulen/loadline-backend/internal/auth"
	"github.com/driesvermeulen/loadline-backend/internal/companies"
	"github.com/driesvermeulen/loadline-backend/internal/customers"
	"github.com/driesvermeulen/loadline-backend/internal/dispatchsvc"
	"github.com/driesvermeulen/loadline-backend/internal/drivers"
	"github.com/driesvermeulen/loadline-backend/internal/orders"
	"github.com/driesvermeulen/loadline-backend/internal/tasktypes"
	"github.com/driesvermeulen/loadline-backend/internal/users"
	"github.com/driesvermeulen/loadline-backend/pkg/auth/session"
	"github.com/driesvermeulen/loadline-backend/pkg/config"
	"github.com/driesvermeulen/loadline-backend/pkg/db"
	"github.com/driesvermeulen/loadline-backend/pkg/logger"
	"github.com/driesvermeulen/loadline-backend/pkg/metrics"
	"github.com/driesvermeulen/loadline-backend/pkg/migrate"
	"github.com/driesvermeulen/loadline-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)
	companyRepo := companies.NewRepository(gormDB)
	customerRepo := customers.NewRepository(gormDB)
	driverRepo := drivers.NewRepository(gormDB)
	taskTypeRepo := tasktypes.NewRepository(gormDB)
	orderRepo := orders.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		Tx:             dbClient,
		UserRepo:       userRepo,
		CustomerRepo:   customerRepo,
		CompanyRepo:    companyRepo,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	companyService, err := companies.NewService(companyRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create company service", err)
		os.Exit(1)
	}

	customerService, err := customers.NewService(customerRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customer service", err)
		os.Exit(1)
	}

	driverService, err := drivers.NewService(driverRepo, dbClient, userRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create driver service", err)
		os.Exit(1)
	}

	taskTypeService, err := tasktypes.NewService(taskTypeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create task type service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orderRepo, dbClient, customerRepo, driverRepo, taskTypeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	dispatchMetrics := metrics.NewDispatchMetrics(prometheus.DefaultRegisterer)
	dispatchService, err := dispatchsvc.NewService(orderRepo, driverRepo, taskTypeService, cfg.Dispatch, dispatchMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create dispatch service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			SessionManager:  sessionManager,
			AuthService:     authService,
			RegisterService: registerService,
			CompanyService:  companyService,
			CustomerService: customerService,
			DriverService:   driverService,
			TaskTypeService: taskTypeService,
			OrderService:    orderService,
			DispatchService: dispatchService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
