package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
)

// UpdateCustomerInput holds the mutable profile fields.
type UpdateCustomerInput struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
}

// CreateAddressInput captures a new address book entry.
type CreateAddressInput struct {
	StreetName  string  `json:"street_name" validate:"required"`
	HouseNumber string  `json:"house_number" validate:"required"`
	City        string  `json:"city" validate:"required"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// Service provides customer profile and address book operations.
type Service interface {
	Get(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error)
	Update(ctx context.Context, customerID uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error)
	AddAddress(ctx context.Context, customerID uuid.UUID, input CreateAddressInput) (*AddressDTO, error)
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]AddressDTO, error)
	RemoveAddress(ctx context.Context, customerID, addressID uuid.UUID) error
}

type customerRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	CreateAddress(ctx context.Context, address *models.Address) (*models.Address, error)
	FindAddressByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]models.Address, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo customerRepo
}

// NewService constructs a customers service.
func NewService(repo customerRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, customerID uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.find(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toCustomerDTO(customer), nil
}

func (s *service) Update(ctx context.Context, customerID uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	if first == "" || last == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first and last name are required")
	}

	customer, err := s.find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.FirstName = first
	customer.LastName = last
	customer.Phone = input.Phone
	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	return toCustomerDTO(updated), nil
}

func (s *service) AddAddress(ctx context.Context, customerID uuid.UUID, input CreateAddressInput) (*AddressDTO, error) {
	street := strings.TrimSpace(input.StreetName)
	houseNumber := strings.TrimSpace(input.HouseNumber)
	city := strings.TrimSpace(input.City)
	if street == "" || houseNumber == "" || city == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "street name, house number, and city are required")
	}

	if _, err := s.find(ctx, customerID); err != nil {
		return nil, err
	}

	address, err := s.repo.CreateAddress(ctx, &models.Address{
		ID:          uuid.New(),
		CustomerID:  customerID,
		StreetName:  street,
		HouseNumber: houseNumber,
		City:        city,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create address")
	}
	return toAddressDTO(address), nil
}

func (s *service) ListAddresses(ctx context.Context, customerID uuid.UUID) ([]AddressDTO, error) {
	addresses, err := s.repo.ListAddresses(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list addresses")
	}
	return toAddressDTOs(addresses), nil
}

func (s *service) RemoveAddress(ctx context.Context, customerID, addressID uuid.UUID) error {
	address, err := s.repo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load address")
	}
	if address.CustomerID != customerID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "address belongs to another customer")
	}
	if err := s.repo.DeleteAddress(ctx, addressID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete address")
	}
	return nil
}

func (s *service) find(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}
