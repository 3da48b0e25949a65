package dispatch

import "time"

// CommittedHours sums the estimated hours of the driver's accepted orders.
// When onDate is set, only orders whose deadline falls on that day count,
// except that an order whose deadline fails to parse is still included:
// unknown-deadline work occupies the driver no matter which day is asked
// about.
func CommittedHours(driverID string, orders []Order, table TaskTimeTable, onDate *time.Time, cfg Config) float64 {
	total := 0.0
	for _, order := range orders {
		if order.DriverID != driverID || order.Status != StatusAccepted {
			continue
		}
		if onDate != nil && order.Deadline != "" {
			if deadline, ok := ParseDay(order.Deadline); ok && !sameDay(deadline, *onDate) {
				continue
			}
		}
		total += EstimateHours(order, table, cfg)
	}
	return total
}
