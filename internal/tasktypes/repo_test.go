package tasktypes

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

func setupTaskTypesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	taskTypes := `
CREATE TABLE IF NOT EXISTS task_types (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  name TEXT NOT NULL,
  time_per_1000kg REAL NOT NULL DEFAULT 1.0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(taskTypes).Error)
	return db
}

func newTaskType(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string, rate float64) *models.TaskType {
	t.Helper()

	taskType := &models.TaskType{
		ID:            uuid.New(),
		CompanyID:     companyID,
		Name:          name,
		TimePer1000Kg: rate,
	}
	require.NoError(t, db.Create(taskType).Error)
	return taskType
}

func TestRepositoryTaskTypeFlow(t *testing.T) {
	db := setupTaskTypesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()

	created, err := repo.Create(ctx, &models.TaskType{
		ID:            uuid.New(),
		CompanyID:     companyID,
		Name:          "Grinding",
		TimePer1000Kg: 1.5,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grinding", found.Name)
	assert.Equal(t, 1.5, found.TimePer1000Kg)

	found.TimePer1000Kg = 2.0
	_, err = repo.Update(ctx, found)
	require.NoError(t, err)

	updated, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.TimePer1000Kg)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryTableForCompany(t *testing.T) {
	db := setupTaskTypesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	otherCompany := uuid.New()

	grinding := newTaskType(t, db, companyID, "Grinding", 1.5)
	blowing := newTaskType(t, db, companyID, "Blowing", 0.8)
	newTaskType(t, db, otherCompany, "Hauling", 3.0)

	table, err := repo.TableForCompany(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, 1.5, table[grinding.ID.String()])
	assert.Equal(t, 0.8, table[blowing.ID.String()])
}

func TestRepositoryListByCompanyOrdersByName(t *testing.T) {
	db := setupTaskTypesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	newTaskType(t, db, companyID, "Zeolite blend", 1.0)
	newTaskType(t, db, companyID, "Aggregate", 1.0)

	rows, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Aggregate", rows[0].Name)
	assert.Equal(t, "Zeolite blend", rows[1].Name)
}
