package tasktypes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/dispatch"
)

// Repository defines persistence operations for company task types.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, taskType *models.TaskType) (*models.TaskType, error)
	Update(ctx context.Context, taskType *models.TaskType) (*models.TaskType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.TaskType, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.TaskType, error)
	TableForCompany(ctx context.Context, companyID uuid.UUID) (dispatch.TaskTimeTable, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a task type repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, taskType *models.TaskType) (*models.TaskType, error) {
	if err := r.db.WithContext(ctx).Create(taskType).Error; err != nil {
		return nil, err
	}
	return taskType, nil
}

func (r *repository) Update(ctx context.Context, taskType *models.TaskType) (*models.TaskType, error) {
	if err := r.db.WithContext(ctx).Save(taskType).Error; err != nil {
		return nil, err
	}
	return taskType, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TaskType{}).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.TaskType, error) {
	var taskType models.TaskType
	if err := r.db.WithContext(ctx).First(&taskType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &taskType, nil
}

func (r *repository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.TaskType, error) {
	var rows []models.TaskType
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// TableForCompany builds the task time lookup consumed by the dispatch engine.
func (r *repository) TableForCompany(ctx context.Context, companyID uuid.UUID) (dispatch.TaskTimeTable, error) {
	rows, err := r.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	table := make(dispatch.TaskTimeTable, len(rows))
	for _, row := range rows {
		table[row.ID.String()] = row.TimePer1000Kg
	}
	return table, nil
}
