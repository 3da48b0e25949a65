package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/config"
	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
	"github.com/driesvermeulen/loadline-backend/pkg/security"
)

// RegisterCustomerRequest contains the payload for onboarding an ordering party.
type RegisterCustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Phone     *string `json:"phone,omitempty"`
}

// RegisterCompanyRequest contains the payload for onboarding a hauling company.
type RegisterCompanyRequest struct {
	CompanyName string  `json:"company_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Phone       *string `json:"phone,omitempty"`
}

// RegisterService handles the onboarding transactions.
type RegisterService interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) error
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) error
}

type registerTxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateInTx(ctx context.Context, tx *gorm.DB, user *models.User) (*models.User, error)
}

type registerCustomerRepo interface {
	CreateInTx(ctx context.Context, tx *gorm.DB, customer *models.Customer) (*models.Customer, error)
}

type registerCompanyRepo interface {
	CreateInTx(ctx context.Context, tx *gorm.DB, company *models.Company) (*models.Company, error)
}

// RegisterServiceParams packages the dependencies for the registration flows.
type RegisterServiceParams struct {
	Tx             registerTxRunner
	UserRepo       registerUserRepo
	CustomerRepo   registerCustomerRepo
	CompanyRepo    registerCompanyRepo
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	tx          registerTxRunner
	users       registerUserRepo
	customers   registerCustomerRepo
	companies   registerCompanyRepo
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repository required")
	}
	if params.CustomerRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "customer repository required")
	}
	if params.CompanyRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "company repository required")
	}
	return &registerService{
		tx:          params.Tx,
		users:       params.UserRepo,
		customers:   params.CustomerRepo,
		companies:   params.CompanyRepo,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) error {
	email, passwordHash, err := s.prepareCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "first and last name are required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		customer, err := s.customers.CreateInTx(ctx, tx, &models.Customer{
			ID:        uuid.New(),
			FirstName: first,
			LastName:  last,
			Email:     email,
			Phone:     req.Phone,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create customer")
		}

		_, err = s.users.CreateInTx(ctx, tx, &models.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: passwordHash,
			Role:         enums.UserRoleCustomer,
			CustomerID:   &customer.ID,
			IsActive:     true,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
}

func (s *registerService) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) error {
	email, passwordHash, err := s.prepareCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "company name is required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		company, err := s.companies.CreateInTx(ctx, tx, &models.Company{
			ID:    uuid.New(),
			Name:  name,
			Email: email,
			Phone: req.Phone,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create company")
		}

		_, err = s.users.CreateInTx(ctx, tx, &models.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: passwordHash,
			Role:         enums.UserRoleCompany,
			CompanyID:    &company.ID,
			IsActive:     true,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
}

// prepareCredentials normalizes the email, rejects duplicates, and hashes the
// password. The unique index on users.email backstops the duplicate check.
func (s *registerService) prepareCredentials(ctx context.Context, email, password string) (string, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if len(password) < 8 {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}

	if _, err := s.users.FindByEmail(ctx, normalized); err == nil {
		return "", "", pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}

	hash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	return normalized, hash, nil
}
