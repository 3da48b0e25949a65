package dispatch

import "time"

// Deadline factor scores. The deadline is the dominant factor: overdue work
// outranks anything scheduled for later.
const (
	deadlineOverdueScore    = 50.0
	deadlineTodayScore      = 45.0
	deadlineUnparsableScore = 15.0
	deadlineMissingScore    = 10.0
)

const (
	weightScoreMax   = 30.0
	weightKgPerPoint = 33.33

	ageScoreMax     = 20.0
	agePointsPerDay = 2.86
)

// PriorityScore rates an order's urgency on a 0-100 scale from three
// independent factors: deadline proximity (10-50 points), weight (0-30
// points, capped at 1000 kg) and submission age (0-20 points, capped at about
// a week). The result is a ranking heuristic, not a probability; equal scores
// are possible and ranking resolves them by stable sort order.
//
// The current time comes in as a parameter, so two calls on different days can
// legitimately rank the same snapshot differently.
func PriorityScore(order Order, now time.Time) float64 {
	score := deadlineScore(order.Deadline, now)

	if kg := parseWeight(order.Weight); kg > 0 {
		score += clamp(kg/weightKgPerPoint, 0, weightScoreMax)
	}

	if created, ok := ParseTimestamp(order.CreatedAt); ok {
		daysOld := int(now.Sub(created).Hours() / 24)
		if daysOld > 0 {
			score += clamp(float64(daysOld)*agePointsPerDay, 0, ageScoreMax)
		}
	}

	return clamp(score, 0, 100)
}

func deadlineScore(deadline string, now time.Time) float64 {
	if deadline == "" {
		return deadlineMissingScore
	}
	day, ok := ParseDay(deadline)
	if !ok {
		return deadlineUnparsableScore
	}

	switch d := daysBetween(now, day); {
	case d < 0:
		return deadlineOverdueScore
	case d == 0:
		return deadlineTodayScore
	case d <= 2:
		return 40.0 - float64(d)*5.0
	case d <= 7:
		return 30.0 - float64(d)*2.0
	default:
		if s := 20.0 - float64(d); s > 10.0 {
			return s
		}
		return 10.0
	}
}
