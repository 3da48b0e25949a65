package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is a customer delivery/pickup location.
type Address struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID  uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index"`
	StreetName  string    `gorm:"column:street_name;not null"`
	HouseNumber string    `gorm:"column:house_number;not null"`
	City        string    `gorm:"column:city;not null"`
	PhoneNumber *string   `gorm:"column:phone_number"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
