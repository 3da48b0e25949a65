package dispatch

// Config carries the tunable constants of the scoring engine. Deployments have
// historically run with different values (10 vs 12 hour workdays, 1.0 vs 0.75
// hour travel overhead), so the constants come in through configuration instead
// of literals.
type Config struct {
	// WorkdayHours is the maximum number of hours a driver can be committed
	// to within one calendar day.
	WorkdayHours float64
	// TravelOverheadHours is the fixed travel time added to every order's
	// work-time estimate.
	TravelOverheadHours float64
	// DefaultRatePer1000Kg is the hours-per-1000kg rate used when a task
	// type has no entry in the company's task time table.
	DefaultRatePer1000Kg float64
}

// DefaultConfig returns the canonical constant set.
func DefaultConfig() Config {
	return Config{
		WorkdayHours:         12.0,
		TravelOverheadHours:  0.75,
		DefaultRatePer1000Kg: 1.0,
	}
}
