package companies

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
)

func setupCompaniesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	companies := `
CREATE TABLE IF NOT EXISTS companies (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(companies).Error)
	return db
}

func TestRepositoryCompanyFlow(t *testing.T) {
	db := setupCompaniesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateInTx(ctx, nil, &models.Company{
		ID:    uuid.New(),
		Name:  "Vermeulen Transport",
		Email: "office@vermeulen.test",
	})
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail(ctx, "office@vermeulen.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	phone := "+31 30 123 4567"
	byEmail.Name = "Vermeulen Logistics"
	byEmail.Phone = &phone
	_, err = repo.Update(ctx, byEmail)
	require.NoError(t, err)

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vermeulen Logistics", reloaded.Name)
	require.NotNil(t, reloaded.Phone)
	assert.Equal(t, phone, *reloaded.Phone)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
