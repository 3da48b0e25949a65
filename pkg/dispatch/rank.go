package dispatch

import (
	"sort"
	"time"
)

// RankByPriority scores every order and returns them sorted by priority,
// most urgent first. The sort is stable: equal scores preserve the input's
// relative order. The input slice is not modified.
//
// Scores depend on now, so ranking the same snapshot on different days gives
// different results. That is intentional.
func RankByPriority(orders []Order, now time.Time) []ScoredOrder {
	ranked := make([]ScoredOrder, 0, len(orders))
	for _, order := range orders {
		ranked = append(ranked, ScoredOrder{
			Order:         order,
			PriorityScore: PriorityScore(order, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})
	return ranked
}
