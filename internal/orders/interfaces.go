package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	"github.com/driesvermeulen/loadline-backend/pkg/pagination"
)

// Repository defines persistence operations for hauling orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, params pagination.Params, filters ListFilters) (*OrderList, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, statuses ...enums.OrderStatus) ([]models.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]models.Order, error)
	ListSnapshot(ctx context.Context, companyID uuid.UUID, limit int) ([]models.Order, error)
	UpdateFields(ctx context.Context, orderID uuid.UUID, updates map[string]any) error
}
