package drivers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/config"
	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
	"github.com/driesvermeulen/loadline-backend/pkg/security"
)

const tempPasswordLength = 12

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type userWriter interface {
	CreateInTx(ctx context.Context, tx *gorm.DB, user *models.User) (*models.User, error)
}

// DriverDTO is the API representation of a driver.
type DriverDTO struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProvisionedDriver bundles a new driver with the one-time login credentials.
type ProvisionedDriver struct {
	Driver       DriverDTO `json:"driver"`
	UserEmail    string    `json:"user_email"`
	TempPassword string    `json:"temp_password"`
}

// CreateInput holds the validated payload to create a driver.
type CreateInput struct {
	Name string
	// Email, when set, provisions a driver login with a temporary password.
	Email *string
}

// Service exposes company driver management.
type Service interface {
	Create(ctx context.Context, companyID uuid.UUID, input CreateInput) (*ProvisionedDriver, error)
	List(ctx context.Context, companyID uuid.UUID) ([]DriverDTO, error)
	Rename(ctx context.Context, companyID, driverID uuid.UUID, name string) (*DriverDTO, error)
	SetActive(ctx context.Context, companyID, driverID uuid.UUID, active bool) (*DriverDTO, error)
}

type service struct {
	repo        Repository
	tx          txRunner
	users       userWriter
	passwordCfg config.PasswordConfig
}

// NewService constructs a driver service instance.
func NewService(repo Repository, tx txRunner, users userWriter, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("driver repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if users == nil {
		return nil, fmt.Errorf("user writer required")
	}
	return &service{repo: repo, tx: tx, users: users, passwordCfg: passwordCfg}, nil
}

// Create adds a driver and, when an email is provided, provisions a login
// with a temporary password in the same transaction.
func (s *service) Create(ctx context.Context, companyID uuid.UUID, input CreateInput) (*ProvisionedDriver, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	var email string
	if input.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "email cannot be blank")
		}
	}

	var out *ProvisionedDriver
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		driver, err := repo.Create(ctx, &models.Driver{
			CompanyID: companyID,
			Name:      name,
			Active:    true,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert driver")
		}

		out = &ProvisionedDriver{Driver: toDTO(driver)}
		if email == "" {
			return nil
		}

		tempPassword, err := security.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temp password")
		}
		hash, err := security.HashPassword(tempPassword, s.passwordCfg)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash temp password")
		}

		if _, err := s.users.CreateInTx(ctx, tx, &models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         enums.UserRoleDriver,
			CompanyID:    &companyID,
			DriverID:     &driver.ID,
			IsActive:     true,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "provision driver login")
		}

		out.UserEmail = email
		out.TempPassword = tempPassword
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) List(ctx context.Context, companyID uuid.UUID) ([]DriverDTO, error) {
	rows, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list drivers")
	}
	out := make([]DriverDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Rename(ctx context.Context, companyID, driverID uuid.UUID, name string) (*DriverDTO, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	driver, err := s.findOwned(ctx, companyID, driverID)
	if err != nil {
		return nil, err
	}
	driver.Name = trimmed
	updated, err := s.repo.Update(ctx, driver)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update driver")
	}
	dto := toDTO(updated)
	return &dto, nil
}

// SetActive toggles whether the driver is eligible for new assignments.
// Deactivation does not touch already accepted orders.
func (s *service) SetActive(ctx context.Context, companyID, driverID uuid.UUID, active bool) (*DriverDTO, error) {
	driver, err := s.findOwned(ctx, companyID, driverID)
	if err != nil {
		return nil, err
	}
	driver.Active = active
	updated, err := s.repo.Update(ctx, driver)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update driver")
	}
	dto := toDTO(updated)
	return &dto, nil
}

func (s *service) findOwned(ctx context.Context, companyID, driverID uuid.UUID) (*models.Driver, error) {
	driver, err := s.repo.FindByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "driver not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find driver")
	}
	if driver.CompanyID != companyID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "driver belongs to another company")
	}
	return driver, nil
}

func toDTO(m *models.Driver) DriverDTO {
	return DriverDTO{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
