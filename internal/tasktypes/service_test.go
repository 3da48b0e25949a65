package tasktypes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/dispatch"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
)

type stubTaskTypeRepo struct {
	byID    map[uuid.UUID]*models.TaskType
	created []*models.TaskType
	updated []*models.TaskType
	deleted []uuid.UUID
}

func newStubTaskTypeRepo() *stubTaskTypeRepo {
	return &stubTaskTypeRepo{byID: make(map[uuid.UUID]*models.TaskType)}
}

func (s *stubTaskTypeRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubTaskTypeRepo) Create(ctx context.Context, taskType *models.TaskType) (*models.TaskType, error) {
	if taskType.ID == uuid.Nil {
		taskType.ID = uuid.New()
	}
	s.byID[taskType.ID] = taskType
	s.created = append(s.created, taskType)
	return taskType, nil
}

func (s *stubTaskTypeRepo) Update(ctx context.Context, taskType *models.TaskType) (*models.TaskType, error) {
	s.byID[taskType.ID] = taskType
	s.updated = append(s.updated, taskType)
	return taskType, nil
}

func (s *stubTaskTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubTaskTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.TaskType, error) {
	taskType, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return taskType, nil
}

func (s *stubTaskTypeRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.TaskType, error) {
	var rows []models.TaskType
	for _, taskType := range s.byID {
		if taskType.CompanyID == companyID {
			rows = append(rows, *taskType)
		}
	}
	return rows, nil
}

func (s *stubTaskTypeRepo) TableForCompany(ctx context.Context, companyID uuid.UUID) (dispatch.TaskTimeTable, error) {
	table := dispatch.TaskTimeTable{}
	for _, taskType := range s.byID {
		if taskType.CompanyID == companyID {
			table[taskType.ID.String()] = taskType.TimePer1000Kg
		}
	}
	return table, nil
}

func TestServiceCreateValidatesInput(t *testing.T) {
	repo := newStubTaskTypeRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	ctx := context.Background()
	companyID := uuid.New()

	_, err = svc.Create(ctx, companyID, CreateInput{Name: "  ", TimePer1000Kg: 1.0})
	requireCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.Create(ctx, companyID, CreateInput{Name: "Grinding", TimePer1000Kg: 0})
	requireCode(t, err, pkgerrors.CodeValidation)

	dto, err := svc.Create(ctx, companyID, CreateInput{Name: " Grinding ", TimePer1000Kg: 1.5})
	require.NoError(t, err)
	assert.Equal(t, "Grinding", dto.Name)
	assert.Equal(t, companyID, dto.CompanyID)
}

func TestServiceUpdateEnforcesOwnership(t *testing.T) {
	repo := newStubTaskTypeRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	dto, err := svc.Create(ctx, owner, CreateInput{Name: "Blowing", TimePer1000Kg: 0.8})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder, dto.ID, UpdateInput{})
	requireCode(t, err, pkgerrors.CodeForbidden)

	rate := 2.5
	updated, err := svc.Update(ctx, owner, dto.ID, UpdateInput{TimePer1000Kg: &rate})
	require.NoError(t, err)
	assert.Equal(t, 2.5, updated.TimePer1000Kg)

	_, err = svc.Update(ctx, owner, uuid.New(), UpdateInput{})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceDeleteScopedToCompany(t *testing.T) {
	repo := newStubTaskTypeRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	ctx := context.Background()
	owner := uuid.New()

	dto, err := svc.Create(ctx, owner, CreateInput{Name: "Hauling", TimePer1000Kg: 3.0})
	require.NoError(t, err)

	requireCode(t, svc.Delete(ctx, uuid.New(), dto.ID), pkgerrors.CodeForbidden)
	require.NoError(t, svc.Delete(ctx, owner, dto.ID))
	assert.Len(t, repo.deleted, 1)
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr, "expected coded error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}
