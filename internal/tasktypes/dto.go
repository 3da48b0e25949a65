package tasktypes

import (
	"time"

	"github.com/google/uuid"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
)

// TaskTypeDTO is the API representation of a task type.
type TaskTypeDTO struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"company_id"`
	Name          string    `json:"name"`
	TimePer1000Kg float64   `json:"time_per_1000kg"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toDTO(m *models.TaskType) *TaskTypeDTO {
	return &TaskTypeDTO{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		TimePer1000Kg: m.TimePer1000Kg,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDTOs(rows []models.TaskType) []TaskTypeDTO {
	out := make([]TaskTypeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
