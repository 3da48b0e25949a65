package companies

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
)

// Repository exposes company persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a companies repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateInTx inserts a company inside the provided transaction. When tx is
// nil the repository's own connection is used.
func (r *Repository) CreateInTx(ctx context.Context, tx *gorm.DB, company *models.Company) (*models.Company, error) {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	if err := conn.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// FindByID loads a company by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByEmail retrieves the company registered under the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// Update persists the mutable profile fields of a company.
func (r *Repository) Update(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := r.db.WithContext(ctx).
		Model(company).
		Select("name", "phone").
		Updates(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}
