package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
)

// ListFilters describe the inputs supported by the company orders list.
type ListFilters struct {
	Status       *enums.OrderStatus
	DriverID     *uuid.UUID
	TaskTypeID   *uuid.UUID
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
}

// AddressDTO is the embedded address shape on order reads.
type AddressDTO struct {
	ID          uuid.UUID `json:"id"`
	StreetName  string    `json:"street_name"`
	HouseNumber string    `json:"house_number"`
	City        string    `json:"city"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
}

// OrderDTO is the API representation of an order.
type OrderDTO struct {
	ID           uuid.UUID         `json:"id"`
	CompanyID    uuid.UUID         `json:"company_id"`
	AddressID    uuid.UUID         `json:"address_id"`
	TaskTypeID   *uuid.UUID        `json:"task_type_id,omitempty"`
	TaskTypeName *string           `json:"task_type_name,omitempty"`
	DriverID     *uuid.UUID        `json:"driver_id,omitempty"`
	DriverName   *string           `json:"driver_name,omitempty"`
	ProductType  *string           `json:"product_type,omitempty"`
	WeightKg     *float64          `json:"weight_kg,omitempty"`
	Deadline     *string           `json:"deadline,omitempty"`
	Status       enums.OrderStatus `json:"status"`
	Notes        *string           `json:"notes,omitempty"`
	Address      *AddressDTO       `json:"address,omitempty"`
	AcceptedAt   *time.Time        `json:"accepted_at,omitempty"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// deadlineWireFormat is the calendar-date form used on the API surface.
const deadlineWireFormat = "2006-01-02"

func toDTO(m *models.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		AddressID:   m.AddressID,
		TaskTypeID:  m.TaskTypeID,
		DriverID:    m.DriverID,
		ProductType: m.ProductType,
		WeightKg:    m.WeightKg,
		Status:      m.Status,
		Notes:       m.Notes,
		AcceptedAt:  m.AcceptedAt,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Deadline != nil {
		formatted := m.Deadline.Format(deadlineWireFormat)
		dto.Deadline = &formatted
	}
	if m.TaskType != nil {
		dto.TaskTypeName = &m.TaskType.Name
	}
	if m.Driver != nil {
		dto.DriverName = &m.Driver.Name
	}
	if m.Address != nil {
		dto.Address = &AddressDTO{
			ID:          m.Address.ID,
			StreetName:  m.Address.StreetName,
			HouseNumber: m.Address.HouseNumber,
			City:        m.Address.City,
			PhoneNumber: m.Address.PhoneNumber,
		}
	}
	return dto
}

func toDTOs(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
