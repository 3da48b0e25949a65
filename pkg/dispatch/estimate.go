package dispatch

// EstimateHours returns the total hours an order will consume: work time
// proportional to weight plus the fixed travel overhead.
//
// The hours-per-1000kg rate resolves in order: the company's task time table,
// then the order's explicit override, then the configured default. There are
// no error conditions; a malformed weight estimates as travel overhead only.
func EstimateHours(order Order, table TaskTimeTable, cfg Config) float64 {
	rate := cfg.DefaultRatePer1000Kg
	if tableRate, ok := table[order.TaskTypeID]; ok {
		rate = tableRate
	} else if order.RatePer1000Kg != nil {
		rate = *order.RatePer1000Kg
	}

	workHours := parseWeight(order.Weight) / 1000.0 * rate
	return workHours + cfg.TravelOverheadHours
}
