package dispatch

// Suitability score tiers, keyed by the slack a driver has left on the
// order's deadline day after absorbing the order itself.
const (
	suitabilityNeutral = 50.0

	suitabilityAmple      = 100.0
	suitabilityGood       = 80.0
	suitabilitySufficient = 70.0
	suitabilityTight      = 60.0
)

// Suitability rates how well a driver fits one order on a 0-100 scale.
//
// A driver without a usable ID scores 0. An order without a deadline scores
// the neutral 50: no capacity check is possible. Otherwise the score is a
// tier of the driver's remaining capacity on the deadline day, with 0 when
// the order cannot physically fit, which callers treat as a hard rejection
// signal. The score is monotonic in available slack by construction.
//
// The workload index is part of the engine's call surface for callers that
// precompute it; the tiered formula itself only needs the deadline-day
// committed hours, which are recomputed from the full snapshot.
func Suitability(driver Driver, order Order, workload WorkloadIndex, allOrders []Order, table TaskTimeTable, cfg Config) float64 {
	_ = workload

	if driver.ID == "" {
		return 0
	}

	deadline, ok := ParseDay(order.Deadline)
	if !ok {
		return suitabilityNeutral
	}

	orderTime := EstimateHours(order, table, cfg)
	committed := CommittedHours(driver.ID, allOrders, table, &deadline, cfg)
	available := cfg.WorkdayHours - committed

	switch {
	case available < orderTime:
		return 0
	case available >= orderTime+4:
		return suitabilityAmple
	case available >= orderTime+2:
		return suitabilityGood
	case available >= orderTime+1:
		return suitabilitySufficient
	default:
		return suitabilityTight
	}
}
