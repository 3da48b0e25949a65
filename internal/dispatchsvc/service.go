// Package dispatchsvc bridges persisted orders and drivers into the pure
// scoring engine in pkg/dispatch. All engine inputs are loaded as one
// snapshot per call; nothing here writes to the database.
package dispatchsvc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/config"
	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/dispatch"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
	"github.com/driesvermeulen/loadline-backend/pkg/metrics"
)

type orderSource interface {
	ListSnapshot(ctx context.Context, companyID uuid.UUID, limit int) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type driverSource interface {
	ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Driver, error)
}

type tableSource interface {
	TableForCompany(ctx context.Context, companyID uuid.UUID) (dispatch.TaskTimeTable, error)
}

// Service exposes the read-only dispatch views served to company planners.
type Service interface {
	Queue(ctx context.Context, companyID uuid.UUID, now time.Time) ([]QueueEntry, error)
	Recommend(ctx context.Context, companyID, orderID uuid.UUID, now time.Time) (*RecommendationDTO, error)
	Availability(ctx context.Context, companyID uuid.UUID, now time.Time) ([]DriverAvailability, error)
}

type service struct {
	orders  orderSource
	drivers driverSource
	tables  tableSource
	cfg     dispatch.Config
	limit   int
	metrics *metrics.DispatchMetrics
}

// NewService constructs the dispatch read service.
func NewService(orders orderSource, drivers driverSource, tables tableSource, cfg config.DispatchConfig, m *metrics.DispatchMetrics) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order source required")
	}
	if drivers == nil {
		return nil, fmt.Errorf("driver source required")
	}
	if tables == nil {
		return nil, fmt.Errorf("task time table source required")
	}
	// Each constant falls back on its own so a partial override keeps the rest.
	defaults := dispatch.DefaultConfig()
	engineCfg := dispatch.Config{
		WorkdayHours:         cfg.WorkdayHours,
		TravelOverheadHours:  cfg.TravelOverheadHours,
		DefaultRatePer1000Kg: cfg.DefaultRatePer1000Kg,
	}
	if engineCfg.WorkdayHours <= 0 {
		engineCfg.WorkdayHours = defaults.WorkdayHours
	}
	if engineCfg.TravelOverheadHours <= 0 {
		engineCfg.TravelOverheadHours = defaults.TravelOverheadHours
	}
	if engineCfg.DefaultRatePer1000Kg <= 0 {
		engineCfg.DefaultRatePer1000Kg = defaults.DefaultRatePer1000Kg
	}
	limit := cfg.SnapshotLimit
	if limit <= 0 {
		limit = 100
	}
	return &service{
		orders:  orders,
		drivers: drivers,
		tables:  tables,
		cfg:     engineCfg,
		limit:   limit,
		metrics: m,
	}, nil
}

// Queue returns the company's pending orders ranked by priority, most urgent first.
func (s *service) Queue(ctx context.Context, companyID uuid.UUID, now time.Time) ([]QueueEntry, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDuration("queue", time.Since(start)) }()

	rows, err := s.orders.ListSnapshot(ctx, companyID, s.limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order snapshot")
	}

	pending := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		if row.Status == enums.OrderStatusPending {
			pending = append(pending, row)
		}
	}

	ranked := dispatch.RankByPriority(snapshotOrders(pending), now)

	byID := make(map[string]*models.Order, len(pending))
	for i := range pending {
		byID[pending[i].ID.String()] = &pending[i]
	}

	entries := make([]QueueEntry, 0, len(ranked))
	for _, scored := range ranked {
		row, ok := byID[scored.Order.ID]
		if !ok {
			continue
		}
		entries = append(entries, queueEntry(row, scored.PriorityScore))
	}
	return entries, nil
}

// Recommend suggests the most suitable driver for one order. Returns a
// NotFound error when no driver can absorb the order inside a workday.
func (s *service) Recommend(ctx context.Context, companyID, orderID uuid.UUID, now time.Time) (*RecommendationDTO, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDuration("recommend", time.Since(start)) }()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find order")
	}
	if order.CompanyID != companyID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another company")
	}

	snapshot, driverRows, table, err := s.loadEngineInputs(ctx, companyID)
	if err != nil {
		return nil, err
	}

	drivers := snapshotDrivers(driverRows)
	workload := dispatch.BuildWorkloadIndex(drivers, snapshot, table, s.cfg)

	recommendation := dispatch.RecommendDriver(drivers, snapshotOrder(order), workload, snapshot, table, s.cfg)
	if recommendation == nil {
		s.metrics.IncNoFeasibleDriver()
		s.metrics.IncRecommendation("none")
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no driver can absorb this order")
	}

	s.metrics.IncRecommendation("served")
	return &RecommendationDTO{
		OrderID:        orderID,
		DriverID:       recommendation.DriverID,
		DriverName:     recommendation.DriverName,
		Score:          recommendation.Score,
		AvailableHours: recommendation.AvailableHours,
		Reason:         recommendation.Reason,
	}, nil
}

// Availability summarizes every active driver's committed hours across open
// orders. Orders without a parsable deadline count toward the running total,
// so a driver can be booked out multiple days ahead.
func (s *service) Availability(ctx context.Context, companyID uuid.UUID, now time.Time) ([]DriverAvailability, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDuration("availability", time.Since(start)) }()

	snapshot, driverRows, table, err := s.loadEngineInputs(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]DriverAvailability, 0, len(driverRows))
	for i := range driverRows {
		driver := snapshotDriver(&driverRows[i])
		total := dispatch.CommittedHours(driver.ID, snapshot, table, nil, s.cfg)
		out = append(out, DriverAvailability{
			DriverID:       driver.ID,
			DriverName:     driver.Name,
			CommittedHours: total,
			DaysCommitted:  int(total / s.cfg.WorkdayHours),
			HoursFreeToday: s.cfg.WorkdayHours - math.Mod(total, s.cfg.WorkdayHours),
		})
	}
	return out, nil
}

func (s *service) loadEngineInputs(ctx context.Context, companyID uuid.UUID) ([]dispatch.Order, []models.Driver, dispatch.TaskTimeTable, error) {
	rows, err := s.orders.ListSnapshot(ctx, companyID, s.limit)
	if err != nil {
		return nil, nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order snapshot")
	}
	driverRows, err := s.drivers.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load drivers")
	}
	table, err := s.tables.TableForCompany(ctx, companyID)
	if err != nil {
		return nil, nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load task time table")
	}
	return snapshotOrders(rows), driverRows, table, nil
}

func queueEntry(row *models.Order, score float64) QueueEntry {
	entry := QueueEntry{
		OrderID:       row.ID,
		PriorityScore: score,
		Status:        string(row.Status),
		WeightKg:      row.WeightKg,
		ProductType:   row.ProductType,
	}
	if row.Deadline != nil {
		formatted := row.Deadline.Format(deadlineWireFormat)
		entry.Deadline = &formatted
	}
	if row.DriverID != nil {
		id := row.DriverID.String()
		entry.DriverID = &id
	}
	return entry
}
