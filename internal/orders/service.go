package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/dispatch"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
	"github.com/driesvermeulen/loadline-backend/pkg/pagination"
)

// suggestionLookback caps how many recent orders feed the reorder suggestion dedupe.
const suggestionLookback = 100

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type addressReader interface {
	FindAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
}

type driverReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
}

type taskTypeReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.TaskType, error)
}

// Service defines order lifecycle operations beyond repository reads.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
	Get(ctx context.Context, companyID, orderID uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, companyID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error)
	ListDriverOrders(ctx context.Context, driverID uuid.UUID) ([]OrderDTO, error)
	Accept(ctx context.Context, input AcceptInput) (*OrderDTO, error)
	Complete(ctx context.Context, input CompleteInput) (*OrderDTO, error)
	Reject(ctx context.Context, companyID, orderID uuid.UUID, notes *string) (*OrderDTO, error)
	ReorderSuggestions(ctx context.Context, customerID uuid.UUID) ([]OrderDTO, error)
}

// CreateOrderInput holds the validated payload to create an order.
type CreateOrderInput struct {
	CompanyID   uuid.UUID
	AddressID   uuid.UUID
	CustomerID  *uuid.UUID
	TaskTypeID  *uuid.UUID
	ProductType *string
	WeightKg    *float64
	Deadline    *string
	Notes       *string
}

// AcceptInput captures the data required to accept an order and assign its driver.
type AcceptInput struct {
	CompanyID uuid.UUID
	OrderID   uuid.UUID
	DriverID  uuid.UUID
}

// CompleteInput captures the data required to mark an order completed.
// ActorDriverID is set when a driver account closes out their own order.
type CompleteInput struct {
	CompanyID     uuid.UUID
	OrderID       uuid.UUID
	ActorDriverID *uuid.UUID
}

type service struct {
	repo      Repository
	tx        txRunner
	addresses addressReader
	drivers   driverReader
	taskTypes taskTypeReader
}

// NewService builds an order service with the required dependencies.
func NewService(repo Repository, tx txRunner, addresses addressReader, drivers driverReader, taskTypes taskTypeReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if addresses == nil {
		return nil, fmt.Errorf("address reader required")
	}
	if drivers == nil {
		return nil, fmt.Errorf("driver reader required")
	}
	if taskTypes == nil {
		return nil, fmt.Errorf("task type reader required")
	}
	return &service{
		repo:      repo,
		tx:        tx,
		addresses: addresses,
		drivers:   drivers,
		taskTypes: taskTypes,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	address, err := s.addresses.FindAddressByID(ctx, input.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "address not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find address")
	}
	if input.CustomerID != nil && address.CustomerID != *input.CustomerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "address belongs to another customer")
	}

	if input.TaskTypeID != nil {
		taskType, err := s.taskTypes.FindByID(ctx, *input.TaskTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "task type not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find task type")
		}
		if taskType.CompanyID != input.CompanyID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "task type belongs to another company")
		}
	}

	if input.WeightKg != nil && *input.WeightKg < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "weight_kg cannot be negative")
	}

	var deadline *time.Time
	if input.Deadline != nil && strings.TrimSpace(*input.Deadline) != "" {
		parsed, err := time.ParseInLocation(deadlineWireFormat, strings.TrimSpace(*input.Deadline), time.UTC)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "deadline must be YYYY-MM-DD")
		}
		deadline = &parsed
	}

	order := &models.Order{
		CompanyID:   input.CompanyID,
		AddressID:   input.AddressID,
		TaskTypeID:  input.TaskTypeID,
		ProductType: normalizeOptional(input.ProductType),
		WeightKg:    input.WeightKg,
		Deadline:    deadline,
		Status:      enums.OrderStatusPending,
		Notes:       normalizeOptional(input.Notes),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert order")
	}
	return toDTO(created), nil
}

func (s *service) Get(ctx context.Context, companyID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.findCompanyOrder(ctx, s.repo, companyID, orderID)
	if err != nil {
		return nil, err
	}
	return toDTO(order), nil
}

func (s *service) List(ctx context.Context, companyID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error) {
	list, err := s.repo.ListByCompany(ctx, companyID, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return list, nil
}

func (s *service) ListDriverOrders(ctx context.Context, driverID uuid.UUID) ([]OrderDTO, error) {
	rows, err := s.repo.ListByDriver(ctx, driverID, enums.OrderStatusAccepted)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list driver orders")
	}
	return toDTOs(rows), nil
}

// Accept moves a pending order to accepted and writes the driver assignment back.
func (s *service) Accept(ctx context.Context, input AcceptInput) (*OrderDTO, error) {
	driver, err := s.drivers.FindByID(ctx, input.DriverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "driver not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find driver")
	}
	if driver.CompanyID != input.CompanyID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "driver belongs to another company")
	}
	if !driver.Active {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "driver is inactive")
	}

	var updated *OrderDTO
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := s.findCompanyOrder(ctx, repo, input.CompanyID, input.OrderID)
		if err != nil {
			return err
		}
		if order.Status != enums.OrderStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("order is %s, only pending orders can be accepted", order.Status))
		}

		now := time.Now().UTC()
		if err := repo.UpdateFields(ctx, order.ID, map[string]any{
			"status":      enums.OrderStatusAccepted,
			"driver_id":   input.DriverID,
			"accepted_at": now,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept order")
		}

		refreshed, err := repo.FindByID(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		updated = toDTO(refreshed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Complete moves an accepted order to completed.
func (s *service) Complete(ctx context.Context, input CompleteInput) (*OrderDTO, error) {
	var updated *OrderDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := s.findCompanyOrder(ctx, repo, input.CompanyID, input.OrderID)
		if err != nil {
			return err
		}
		if order.Status != enums.OrderStatusAccepted {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("order is %s, only accepted orders can be completed", order.Status))
		}
		if input.ActorDriverID != nil {
			if order.DriverID == nil || *order.DriverID != *input.ActorDriverID {
				return pkgerrors.New(pkgerrors.CodeForbidden, "order is assigned to another driver")
			}
		}

		now := time.Now().UTC()
		if err := repo.UpdateFields(ctx, order.ID, map[string]any{
			"status":       enums.OrderStatusCompleted,
			"completed_at": now,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "complete order")
		}

		refreshed, err := repo.FindByID(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		updated = toDTO(refreshed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Reject moves a pending order to rejected.
func (s *service) Reject(ctx context.Context, companyID, orderID uuid.UUID, notes *string) (*OrderDTO, error) {
	var updated *OrderDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := s.findCompanyOrder(ctx, repo, companyID, orderID)
		if err != nil {
			return err
		}
		if order.Status != enums.OrderStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("order is %s, only pending orders can be rejected", order.Status))
		}

		updates := map[string]any{"status": enums.OrderStatusRejected}
		if trimmed := normalizeOptional(notes); trimmed != nil {
			updates["notes"] = *trimmed
		}
		if err := repo.UpdateFields(ctx, order.ID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject order")
		}

		refreshed, err := repo.FindByID(ctx, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload order")
		}
		updated = toDTO(refreshed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReorderSuggestions returns one representative order per distinct
// (task type, product, address, company) identity in the customer's history.
func (s *service) ReorderSuggestions(ctx context.Context, customerID uuid.UUID) ([]OrderDTO, error) {
	rows, err := s.repo.ListByCustomer(ctx, customerID, suggestionLookback)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customer orders")
	}

	candidates := make([]dispatch.Order, 0, len(rows))
	byID := make(map[string]*models.Order, len(rows))
	for i := range rows {
		row := &rows[i]
		candidates = append(candidates, dedupeCandidate(row))
		byID[row.ID.String()] = row
	}

	kept := dispatch.FilterDuplicates(candidates)
	out := make([]OrderDTO, 0, len(kept))
	for _, candidate := range kept {
		if row, ok := byID[candidate.ID]; ok {
			out = append(out, *toDTO(row))
		}
	}
	return out, nil
}

func (s *service) findCompanyOrder(ctx context.Context, repo Repository, companyID, orderID uuid.UUID) (*models.Order, error) {
	order, err := repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find order")
	}
	if order.CompanyID != companyID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another company")
	}
	return order, nil
}

// dedupeCandidate projects the identity fields the duplicate filter keys on.
func dedupeCandidate(m *models.Order) dispatch.Order {
	candidate := dispatch.Order{
		ID:        m.ID.String(),
		AddressID: m.AddressID.String(),
		CompanyID: m.CompanyID.String(),
	}
	if m.TaskTypeID != nil {
		candidate.TaskTypeID = m.TaskTypeID.String()
	}
	if m.ProductType != nil {
		candidate.ProductType = *m.ProductType
	}
	return candidate
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
