package dispatch

import "sort"

// Recommendation reason strings, keyed by the same slack tiers as Suitability.
const (
	reasonAmpleSlack       = "ample slack"
	reasonGoodAvailability = "good availability"
	reasonSufficientSlack  = "sufficient slack"
	reasonAvailable        = "available"
)

// RecommendDriver picks the highest-scoring feasible driver for an order.
//
// Feasibility is a hard filter: when the order has a deadline, any driver
// whose deadline-day committed hours plus the order's estimated time exceed
// the workday budget is excluded outright, independent of score. A nil result
// means no feasible driver exists today. That is an expected outcome, not an
// error, and callers must branch on it.
//
// Equal scores resolve lexicographically by driver ID so the choice never
// depends on incidental input ordering.
func RecommendDriver(drivers []Driver, order Order, workload WorkloadIndex, allOrders []Order, table TaskTimeTable, cfg Config) *Recommendation {
	if len(drivers) == 0 {
		return nil
	}

	orderTime := EstimateHours(order, table, cfg)
	deadline, hasDeadline := ParseDay(order.Deadline)

	type candidate struct {
		driver Driver
		score  float64
	}
	candidates := make([]candidate, 0, len(drivers))
	for _, driver := range drivers {
		score := Suitability(driver, order, workload, allOrders, table, cfg)
		if hasDeadline {
			committed := CommittedHours(driver.ID, allOrders, table, &deadline, cfg)
			if committed+orderTime > cfg.WorkdayHours {
				continue
			}
		}
		candidates = append(candidates, candidate{driver: driver, score: score})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].driver.ID < candidates[j].driver.ID
	})

	best := candidates[0]
	available := cfg.WorkdayHours
	if hasDeadline {
		available -= CommittedHours(best.driver.ID, allOrders, table, &deadline, cfg)
	}

	return &Recommendation{
		DriverID:       best.driver.ID,
		DriverName:     best.driver.Name,
		Score:          best.score,
		AvailableHours: available,
		Reason:         recommendationReason(available, orderTime),
	}
}

func recommendationReason(available, orderTime float64) string {
	switch {
	case available >= orderTime+4:
		return reasonAmpleSlack
	case available >= orderTime+2:
		return reasonGoodAvailability
	case available >= orderTime+1:
		return reasonSufficientSlack
	default:
		return reasonAvailable
	}
}
