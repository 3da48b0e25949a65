package dispatchsvc

import (
	"strconv"
	"time"

	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/dispatch"
)

const deadlineWireFormat = "2006-01-02"

// snapshotOrder projects a persisted order into the engine's input shape.
// Missing deadline/weight become empty strings; the engine degrades them
// instead of failing.
func snapshotOrder(m *models.Order) dispatch.Order {
	order := dispatch.Order{
		ID:        m.ID.String(),
		Status:    string(m.Status),
		AddressID: m.AddressID.String(),
		CompanyID: m.CompanyID.String(),
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.Deadline != nil {
		order.Deadline = m.Deadline.Format(deadlineWireFormat)
	}
	if m.WeightKg != nil {
		order.Weight = strconv.FormatFloat(*m.WeightKg, 'f', -1, 64)
	}
	if m.TaskTypeID != nil {
		order.TaskTypeID = m.TaskTypeID.String()
	}
	if m.DriverID != nil {
		order.DriverID = m.DriverID.String()
	}
	if m.ProductType != nil {
		order.ProductType = *m.ProductType
	}
	return order
}

func snapshotOrders(rows []models.Order) []dispatch.Order {
	out := make([]dispatch.Order, 0, len(rows))
	for i := range rows {
		out = append(out, snapshotOrder(&rows[i]))
	}
	return out
}

func snapshotDriver(m *models.Driver) dispatch.Driver {
	return dispatch.Driver{
		ID:   m.ID.String(),
		Name: m.Name,
	}
}

func snapshotDrivers(rows []models.Driver) []dispatch.Driver {
	out := make([]dispatch.Driver, 0, len(rows))
	for i := range rows {
		out = append(out, snapshotDriver(&rows[i]))
	}
	return out
}
