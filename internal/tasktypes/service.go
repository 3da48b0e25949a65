package tasktypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/dispatch"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
)

// Service exposes company task type management.
type Service interface {
	Create(ctx context.Context, companyID uuid.UUID, input CreateInput) (*TaskTypeDTO, error)
	Update(ctx context.Context, companyID, taskTypeID uuid.UUID, input UpdateInput) (*TaskTypeDTO, error)
	Delete(ctx context.Context, companyID, taskTypeID uuid.UUID) error
	List(ctx context.Context, companyID uuid.UUID) ([]TaskTypeDTO, error)
	TableForCompany(ctx context.Context, companyID uuid.UUID) (dispatch.TaskTimeTable, error)
}

// CreateInput holds the validated payload to create a task type.
type CreateInput struct {
	Name          string
	TimePer1000Kg float64
}

// UpdateInput holds optional mutation values for a task type.
type UpdateInput struct {
	Name          *string
	TimePer1000Kg *float64
}

type service struct {
	repo Repository
}

// NewService constructs a task type service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("task type repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, companyID uuid.UUID, input CreateInput) (*TaskTypeDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.TimePer1000Kg <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "time_per_1000kg must be positive")
	}

	created, err := s.repo.Create(ctx, &models.TaskType{
		CompanyID:     companyID,
		Name:          name,
		TimePer1000Kg: input.TimePer1000Kg,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert task type")
	}
	return toDTO(created), nil
}

func (s *service) Update(ctx context.Context, companyID, taskTypeID uuid.UUID, input UpdateInput) (*TaskTypeDTO, error) {
	existing, err := s.findOwned(ctx, companyID, taskTypeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		existing.Name = name
	}
	if input.TimePer1000Kg != nil {
		if *input.TimePer1000Kg <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "time_per_1000kg must be positive")
		}
		existing.TimePer1000Kg = *input.TimePer1000Kg
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update task type")
	}
	return toDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, companyID, taskTypeID uuid.UUID) error {
	if _, err := s.findOwned(ctx, companyID, taskTypeID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, taskTypeID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete task type")
	}
	return nil
}

func (s *service) List(ctx context.Context, companyID uuid.UUID) ([]TaskTypeDTO, error) {
	rows, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list task types")
	}
	return toDTOs(rows), nil
}

func (s *service) TableForCompany(ctx context.Context, companyID uuid.UUID) (dispatch.TaskTimeTable, error) {
	table, err := s.repo.TableForCompany(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load task time table")
	}
	return table, nil
}

func (s *service) findOwned(ctx context.Context, companyID, taskTypeID uuid.UUID) (*models.TaskType, error) {
	existing, err := s.repo.FindByID(ctx, taskTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "task type not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find task type")
	}
	if existing.CompanyID != companyID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "task type belongs to another company")
	}
	return existing, nil
}
