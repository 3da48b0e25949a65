package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	"github.com/driesvermeulen/loadline-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("TaskType").
		Preload("Driver").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByCompany returns a cursor-paginated page of the company's orders.
func (r *repository) ListByCompany(ctx context.Context, companyID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error) {
	pageSize := params.PageSize()

	cursor, err := pagination.DecodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).
		Preload("Address").
		Preload("TaskType").
		Preload("Driver").
		Where("company_id = ?", companyID)

	if filters.Status != nil {
		qb = qb.Where("status = ?", *filters.Status)
	}
	if filters.DriverID != nil {
		qb = qb.Where("driver_id = ?", *filters.DriverID)
	}
	if filters.TaskTypeID != nil {
		qb = qb.Where("task_type_id = ?", *filters.TaskTypeID)
	}
	if filters.DeadlineFrom != nil {
		qb = qb.Where("deadline >= ?", *filters.DeadlineFrom)
	}
	if filters.DeadlineTo != nil {
		qb = qb.Where("deadline <= ?", *filters.DeadlineTo)
	}

	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Order
	err = qb.Order("created_at DESC").Order("id DESC").Limit(params.FetchLimit()).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()
	}

	return &OrderList{
		Orders:     toDTOs(rows),
		NextCursor: nextCursor,
	}, nil
}

func (r *repository) ListByDriver(ctx context.Context, driverID uuid.UUID, statuses ...enums.OrderStatus) ([]models.Order, error) {
	qb := r.db.WithContext(ctx).
		Preload("Address").
		Preload("TaskType").
		Where("driver_id = ?", driverID)
	if len(statuses) > 0 {
		qb = qb.Where("status IN ?", statuses)
	}
	var rows []models.Order
	err := qb.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// ListByCustomer returns the customer's most recent orders across all of
// their addresses. Used by the reorder suggestion path.
func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Joins("JOIN addresses ON addresses.id = orders.address_id").
		Where("addresses.customer_id = ?", customerID).
		Order("orders.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ListSnapshot returns the company's open orders that feed one dispatch
// engine evaluation, newest first.
func (r *repository) ListSnapshot(ctx context.Context, companyID uuid.UUID, limit int) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("status IN ?", []enums.OrderStatus{enums.OrderStatusPending, enums.OrderStatusAccepted}).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateFields(ctx context.Context, orderID uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}
