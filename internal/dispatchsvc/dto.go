package dispatchsvc

import (
	"github.com/google/uuid"
)

// QueueEntry is one ranked order in the company's dispatch queue.
type QueueEntry struct {
	OrderID       uuid.UUID `json:"order_id"`
	PriorityScore float64   `json:"priority_score"`
	Status        string    `json:"status"`
	Deadline      *string   `json:"deadline,omitempty"`
	WeightKg      *float64  `json:"weight_kg,omitempty"`
	ProductType   *string   `json:"product_type,omitempty"`
	DriverID      *string   `json:"driver_id,omitempty"`
}

// RecommendationDTO is the driver suggestion for a single order.
type RecommendationDTO struct {
	OrderID        uuid.UUID `json:"order_id"`
	DriverID       string    `json:"driver_id"`
	DriverName     string    `json:"driver_name"`
	Score          float64   `json:"score"`
	AvailableHours float64   `json:"available_hours"`
	Reason         string    `json:"reason"`
}

// DriverAvailability summarizes one driver's committed workload.
type DriverAvailability struct {
	DriverID       string  `json:"driver_id"`
	DriverName     string  `json:"driver_name"`
	CommittedHours float64 `json:"committed_hours"`
	DaysCommitted  int     `json:"days_committed"`
	HoursFreeToday float64 `json:"hours_free_today"`
}
