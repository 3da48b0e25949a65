package dispatch

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func deadlineIn(days int) string {
	return fixedNow.AddDate(0, 0, days).Format("2006-01-02")
}

func TestPriorityScoreDeadlineFactor(t *testing.T) {
	cases := []struct {
		name     string
		deadline string
		want     float64
	}{
		{"overdue", deadlineIn(-1), 50},
		{"today", deadlineIn(0), 45},
		{"tomorrow", deadlineIn(1), 35},
		{"in two days", deadlineIn(2), 30},
		{"in three days", deadlineIn(3), 24},
		{"in a week", deadlineIn(7), 16},
		{"in eight days", deadlineIn(8), 12},
		{"far out", deadlineIn(30), 10},
		{"missing", "", 10},
		{"unparsable", "soonish", 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, PriorityScore(Order{Deadline: tc.deadline}, fixedNow), 1e-9)
		})
	}
}

func TestPriorityScoreWeightFactorMonotonicUntilCap(t *testing.T) {
	previous := -1.0
	for _, kg := range []int{0, 100, 500, 999, 1000, 2000} {
		score := PriorityScore(Order{Weight: fmt.Sprintf("%d", kg)}, fixedNow)
		assert.GreaterOrEqual(t, score, previous, "weight %d", kg)
		previous = score
	}

	// Full 30 points at 1000 kg and beyond.
	atCap := PriorityScore(Order{Weight: "1000"}, fixedNow)
	beyondCap := PriorityScore(Order{Weight: "2000"}, fixedNow)
	assert.InDelta(t, atCap, beyondCap, 1e-9)
	assert.InDelta(t, 40, atCap, 1e-9) // 10 missing-deadline + 30 weight
}

func TestPriorityScoreAgeFactor(t *testing.T) {
	fresh := Order{CreatedAt: fixedNow.Format(time.RFC3339)}
	assert.InDelta(t, 10, PriorityScore(fresh, fixedNow), 1e-9)

	weekOld := Order{CreatedAt: fixedNow.AddDate(0, 0, -7).Format(time.RFC3339)}
	assert.InDelta(t, 30, PriorityScore(weekOld, fixedNow), 1e-9) // 10 + capped 20

	zuluSuffix := Order{CreatedAt: fixedNow.AddDate(0, 0, -2).UTC().Format("2006-01-02T15:04:05") + "Z"}
	assert.InDelta(t, 10+2*2.86, PriorityScore(zuluSuffix, fixedNow), 1e-9)

	malformed := Order{CreatedAt: "yesterday-ish"}
	assert.InDelta(t, 10, PriorityScore(malformed, fixedNow), 1e-9)
}

func TestPriorityScoreBounds(t *testing.T) {
	orders := []Order{
		{},
		{Deadline: deadlineIn(-30), Weight: "999999", CreatedAt: fixedNow.AddDate(-1, 0, 0).Format(time.RFC3339)},
		{Deadline: "garbage", Weight: "garbage", CreatedAt: "garbage"},
	}
	for _, order := range orders {
		score := PriorityScore(order, fixedNow)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}

	maxed := Order{
		Deadline:  deadlineIn(-1),
		Weight:    "5000",
		CreatedAt: fixedNow.AddDate(0, 0, -30).Format(time.RFC3339),
	}
	assert.InDelta(t, 100, PriorityScore(maxed, fixedNow), 1e-9)
}

func TestPriorityScoreOverdueDominatesDistantDeadline(t *testing.T) {
	overdue := Order{Deadline: deadlineIn(-1), Weight: "500"}
	distant := Order{Deadline: deadlineIn(10), Weight: "500"}

	assert.Greater(t, PriorityScore(overdue, fixedNow), PriorityScore(distant, fixedNow))
}
