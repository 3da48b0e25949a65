package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	"github.com/driesvermeulen/loadline-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	addresses := `
CREATE TABLE IF NOT EXISTS addresses (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  street_name TEXT NOT NULL,
  house_number TEXT NOT NULL,
  city TEXT NOT NULL,
  phone_number TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	taskTypes := `
CREATE TABLE IF NOT EXISTS task_types (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  name TEXT NOT NULL,
  time_per_1000kg REAL NOT NULL DEFAULT 1.0,
  created_at DATETIME,
  updated_at DATETIME
);`
	drivers := `
CREATE TABLE IF NOT EXISTS drivers (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  name TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  address_id TEXT NOT NULL,
  task_type_id TEXT,
  driver_id TEXT,
  product_type TEXT,
  weight_kg REAL,
  deadline DATETIME,
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  accepted_at DATETIME,
  completed_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(addresses).Error)
	require.NoError(t, db.Exec(taskTypes).Error)
	require.NoError(t, db.Exec(drivers).Error)
	require.NoError(t, db.Exec(orders).Error)
	return db
}

func newAddress(t *testing.T, db *gorm.DB, customerID uuid.UUID) *models.Address {
	t.Helper()

	address := &models.Address{
		ID:          uuid.New(),
		CustomerID:  customerID,
		StreetName:  "Dorpsstraat",
		HouseNumber: "12",
		City:        "Utrecht",
	}
	require.NoError(t, db.Create(address).Error)
	return address
}

func newOrder(t *testing.T, db *gorm.DB, companyID, addressID uuid.UUID, status enums.OrderStatus, createdAt time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:        uuid.New(),
		CompanyID: companyID,
		AddressID: addressID,
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	address := newAddress(t, db, uuid.New())

	weight := 5500.0
	product := "Hay"
	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &models.Order{
		ID:          uuid.New(),
		CompanyID:   companyID,
		AddressID:   address.ID,
		ProductType: &product,
		WeightKg:    &weight,
		Deadline:    &deadline,
		Status:      enums.OrderStatusPending,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, found.Status)
	require.NotNil(t, found.WeightKg)
	assert.Equal(t, 5500.0, *found.WeightKg)
	require.NotNil(t, found.Address)
	assert.Equal(t, "Utrecht", found.Address.City)
}

func TestRepositoryListByCompanyFiltersAndPaginates(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	otherCompany := uuid.New()
	address := newAddress(t, db, uuid.New())

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		newOrder(t, db, companyID, address.ID, enums.OrderStatusPending, base.Add(time.Duration(i)*time.Hour))
	}
	newOrder(t, db, companyID, address.ID, enums.OrderStatusCompleted, base.Add(10*time.Hour))
	newOrder(t, db, otherCompany, address.ID, enums.OrderStatusPending, base)

	pending := enums.OrderStatusPending
	list, err := repo.ListByCompany(ctx, companyID, pagination.Params{Limit: 2}, ListFilters{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list.Orders, 2)
	require.NotEmpty(t, list.NextCursor)

	// newest first
	assert.True(t, list.Orders[0].CreatedAt.After(list.Orders[1].CreatedAt))

	rest, err := repo.ListByCompany(ctx, companyID, pagination.Params{Limit: 2, Cursor: list.NextCursor}, ListFilters{Status: &pending})
	require.NoError(t, err)
	require.Len(t, rest.Orders, 1)
	assert.Empty(t, rest.NextCursor)
}

func TestRepositoryListSnapshotSkipsClosedOrders(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	address := newAddress(t, db, uuid.New())
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	newOrder(t, db, companyID, address.ID, enums.OrderStatusPending, base)
	newOrder(t, db, companyID, address.ID, enums.OrderStatusAccepted, base.Add(time.Hour))
	newOrder(t, db, companyID, address.ID, enums.OrderStatusCompleted, base.Add(2*time.Hour))
	newOrder(t, db, companyID, address.ID, enums.OrderStatusRejected, base.Add(3*time.Hour))

	rows, err := repo.ListSnapshot(ctx, companyID, 50)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Contains(t, []enums.OrderStatus{enums.OrderStatusPending, enums.OrderStatusAccepted}, row.Status)
	}
}

func TestRepositoryListByCustomerJoinsAddresses(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	companyID := uuid.New()
	mine := newAddress(t, db, customerID)
	theirs := newAddress(t, db, uuid.New())

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	newOrder(t, db, companyID, mine.ID, enums.OrderStatusCompleted, base)
	newOrder(t, db, companyID, theirs.ID, enums.OrderStatusCompleted, base)

	rows, err := repo.ListByCustomer(ctx, customerID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].AddressID)
}

func TestRepositoryUpdateFields(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	address := newAddress(t, db, uuid.New())
	order := newOrder(t, db, companyID, address.ID, enums.OrderStatusPending, time.Now().UTC())

	driverID := uuid.New()
	now := time.Now().UTC()
	require.NoError(t, repo.UpdateFields(ctx, order.ID, map[string]any{
		"status":      enums.OrderStatusAccepted,
		"driver_id":   driverID,
		"accepted_at": now,
	}))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusAccepted, found.Status)
	require.NotNil(t, found.DriverID)
	assert.Equal(t, driverID, *found.DriverID)
	require.NotNil(t, found.AcceptedAt)
}
