package customers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
)

type stubCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
	addresses map[uuid.UUID]*models.Address
	deleted   []uuid.UUID
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		customers: make(map[uuid.UUID]*models.Customer),
		addresses: make(map[uuid.UUID]*models.Address),
	}
}

func (s *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	if customer, ok := s.customers[id]; ok {
		copied := *customer
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomerRepo) Update(_ context.Context, customer *models.Customer) (*models.Customer, error) {
	s.customers[customer.ID] = customer
	return customer, nil
}

func (s *stubCustomerRepo) CreateAddress(_ context.Context, address *models.Address) (*models.Address, error) {
	s.addresses[address.ID] = address
	return address, nil
}

func (s *stubCustomerRepo) FindAddressByID(_ context.Context, id uuid.UUID) (*models.Address, error) {
	if address, ok := s.addresses[id]; ok {
		copied := *address
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCustomerRepo) ListAddresses(_ context.Context, customerID uuid.UUID) ([]models.Address, error) {
	var out []models.Address
	for _, address := range s.addresses {
		if address.CustomerID == customerID {
			out = append(out, *address)
		}
	}
	return out, nil
}

func (s *stubCustomerRepo) DeleteAddress(_ context.Context, id uuid.UUID) error {
	delete(s.addresses, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr, "expected coded error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}

func TestServiceUpdateProfile(t *testing.T) {
	repo := newStubCustomerRepo()
	customerID := uuid.New()
	repo.customers[customerID] = &models.Customer{ID: customerID, FirstName: "Annelies", LastName: "de Boer"}

	svc, err := NewService(repo)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), customerID, UpdateCustomerInput{
		FirstName: " Annelies ",
		LastName:  "Smit",
	})
	require.NoError(t, err)
	assert.Equal(t, "Annelies", updated.FirstName)
	assert.Equal(t, "Smit", updated.LastName)

	_, err = svc.Update(context.Background(), customerID, UpdateCustomerInput{FirstName: "", LastName: "Smit"})
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceAddressBookScoping(t *testing.T) {
	repo := newStubCustomerRepo()
	customerID := uuid.New()
	intruderID := uuid.New()
	repo.customers[customerID] = &models.Customer{ID: customerID, FirstName: "Annelies", LastName: "de Boer"}
	repo.customers[intruderID] = &models.Customer{ID: intruderID, FirstName: "Pieter", LastName: "Jansen"}

	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	added, err := svc.AddAddress(ctx, customerID, CreateAddressInput{
		StreetName:  "Keulsekade",
		HouseNumber: "21",
		City:        "Utrecht",
	})
	require.NoError(t, err)

	listed, err := svc.ListAddresses(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, added.ID, listed[0].ID)

	err = svc.RemoveAddress(ctx, intruderID, added.ID)
	requireCode(t, err, pkgerrors.CodeForbidden)

	err = svc.RemoveAddress(ctx, customerID, added.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{added.ID}, repo.deleted)

	err = svc.RemoveAddress(ctx, customerID, added.ID)
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceAddAddressValidation(t *testing.T) {
	repo := newStubCustomerRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.AddAddress(context.Background(), uuid.New(), CreateAddressInput{City: "Utrecht"})
	requireCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.AddAddress(context.Background(), uuid.New(), CreateAddressInput{
		StreetName:  "Keulsekade",
		HouseNumber: "21",
		City:        "Utrecht",
	})
	requireCode(t, err, pkgerrors.CodeNotFound)
}
