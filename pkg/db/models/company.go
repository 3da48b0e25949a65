package models

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a hauling/processing company that receives orders and
// employs drivers.
type Company struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string     `gorm:"column:name;not null"`
	Email     string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	Phone     *string    `gorm:"column:phone"`
	Drivers   []Driver   `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	TaskTypes []TaskType `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
