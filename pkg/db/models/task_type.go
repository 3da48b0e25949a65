package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is a company-scoped work category (grinding, blowing, ...) with
// its hours-per-1000kg rate. The rate feeds the dispatch engine's task time
// table.
type TaskType struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID     uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	Name          string    `gorm:"column:name;not null"`
	TimePer1000Kg float64   `gorm:"column:time_per_1000kg;not null;default:1.0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
