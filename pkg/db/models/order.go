package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/driesvermeulen/loadline-backend/pkg/enums"
)

// Order is one unit of hauling/processing work. Deadline is a calendar date;
// weight is kilograms. Both are optional: the scoring engine degrades missing
// values instead of rejecting the row.
type Order struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID   uuid.UUID         `gorm:"column:company_id;type:uuid;not null;index"`
	AddressID   uuid.UUID         `gorm:"column:address_id;type:uuid;not null;index"`
	TaskTypeID  *uuid.UUID        `gorm:"column:task_type_id;type:uuid;index"`
	DriverID    *uuid.UUID        `gorm:"column:driver_id;type:uuid;index"`
	ProductType *string           `gorm:"column:product_type"`
	WeightKg    *float64          `gorm:"column:weight_kg"`
	Deadline    *time.Time        `gorm:"column:deadline;type:date"`
	Status      enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Notes       *string           `gorm:"column:notes"`
	AcceptedAt  *time.Time        `gorm:"column:accepted_at"`
	CompletedAt *time.Time        `gorm:"column:completed_at"`
	Address     *Address          `gorm:"foreignKey:AddressID"`
	TaskType    *TaskType         `gorm:"foreignKey:TaskTypeID"`
	Driver      *Driver           `gorm:"foreignKey:DriverID"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
