package companies

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

type stubCompanyRepo struct {
	companies map[uuid.UUID]*models.Company
	updated   *models.Company
}

func (s *stubCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	if company, ok := s.companies[id]; ok {
		copied := *company
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCompanyRepo) Update(_ context.Context, company *models.Company) (*models.Company, error) {
	s.updated = company
	s.companies[company.ID] = company
	return company, nil
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr, "expected coded error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}

func TestServiceGetAndUpdate(t *testing.T) {
	companyID := uuid.New()
	repo := &stubCompanyRepo{companies: map[uuid.UUID]*models.Company{
		companyID: {ID: companyID, Name: "Vermeulen Transport", Email: "office@vermeulen.test"},
	}}
	svc, err := NewService(repo)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, "Vermeulen Transport", got.Name)

	phone := "+31 30 123 4567"
	updated, err := svc.Update(context.Background(), companyID, UpdateCompanyInput{
		Name:  "Vermeulen Logistics",
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vermeulen Logistics", updated.Name)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Vermeulen Logistics", repo.updated.Name)
}

func TestServiceUpdateValidation(t *testing.T) {
	companyID := uuid.New()
	repo := &stubCompanyRepo{companies: map[uuid.UUID]*models.Company{
		companyID: {ID: companyID, Name: "Vermeulen Transport"},
	}}
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), companyID, UpdateCompanyInput{Name: "  "})
	requireCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.Get(context.Background(), uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}
