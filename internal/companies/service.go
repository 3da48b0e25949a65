package companies

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
)

// CompanyDTO is the transport shape for a company profile.
type CompanyDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateCompanyInput holds the mutable profile fields.
type UpdateCompanyInput struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone,omitempty"`
}

// Service provides company profile reads and updates.
type Service interface {
	Get(ctx context.Context, companyID uuid.UUID) (*CompanyDTO, error)
	Update(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*CompanyDTO, error)
}

type companyRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) (*models.Company, error)
}

type service struct {
	repo companyRepo
}

// NewService constructs a companies service.
func NewService(repo companyRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("companies repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, companyID uuid.UUID) (*CompanyDTO, error) {
	company, err := s.find(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toDTO(company), nil
}

func (s *service) Update(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*CompanyDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	company, err := s.find(ctx, companyID)
	if err != nil {
		return nil, err
	}

	company.Name = name
	company.Phone = input.Phone
	updated, err := s.repo.Update(ctx, company)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update company")
	}
	return toDTO(updated), nil
}

func (s *service) find(ctx context.Context, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "company not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load company")
	}
	return company, nil
}

func toDTO(company *models.Company) *CompanyDTO {
	if company == nil {
		return nil
	}
	return &CompanyDTO{
		ID:        company.ID,
		Name:      company.Name,
		Email:     company.Email,
		Phone:     company.Phone,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
