// Package dispatch implements the order-prioritization and driver-assignment
// heuristics: urgency scoring, time estimation, workload aggregation, driver
// suitability and recommendation, queue ranking, and duplicate filtering.
//
// Every function is pure. Inputs are fully materialized snapshots supplied by
// the caller; the engine performs no I/O, holds no state between calls, and
// never mutates its inputs. Rankings depend on the clock, so "now" is always
// an explicit parameter. Malformed numeric and date fields degrade to
// conservative defaults instead of failing: a corrupt record lowers a score,
// it never aborts a batch.
package dispatch

// Order status values recognized by the engine. Only accepted orders count
// toward a driver's committed workload; completed orders no longer occupy
// capacity. The legacy rejected status may still appear in snapshots.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// Order is a read-only snapshot of one unit of work. Date and weight fields
// are kept as raw strings on purpose: records arrive from storage with
// historically loose typing, and the engine's parse-or-default helpers decide
// how each malformed value degrades.
type Order struct {
	ID string

	// Deadline is a calendar date (YYYY-MM-DD) or empty.
	Deadline string
	// Weight is the load in kilograms; empty or unparsable counts as 0.
	Weight string
	// TaskTypeID keys into the company's task time table.
	TaskTypeID string
	// RatePer1000Kg overrides the table rate for this order when set.
	RatePer1000Kg *float64
	// CreatedAt is an ISO-8601 timestamp, possibly Z-suffixed, or empty.
	CreatedAt string

	Status   string
	DriverID string

	// Identity attributes used only by duplicate filtering.
	ProductType string
	AddressID   string
	CompanyID   string
}

// Driver identifies an assignable driver. Drivers are opaque beyond identity;
// skills and vehicles are not modeled.
type Driver struct {
	ID   string
	Name string
}

// TaskTimeTable maps a task type ID to its hours-per-1000kg rate. Absent
// entries fall back to Config.DefaultRatePer1000Kg.
type TaskTimeTable map[string]float64

// WorkloadIndex maps a driver ID to cumulative committed hours. It is derived
// from an order snapshot on every call, never stored.
type WorkloadIndex map[string]float64

// ScoredOrder pairs an order with its computed priority score.
type ScoredOrder struct {
	Order         Order
	PriorityScore float64
}

// Recommendation is the advisory result of picking the best feasible driver
// for one order. It is read-only: persisting the assignment is the caller's
// responsibility.
type Recommendation struct {
	DriverID       string
	DriverName     string
	Score          float64
	AvailableHours float64
	Reason         string
}

// BuildWorkloadIndex computes each driver's total committed hours over the
// full order snapshot.
func BuildWorkloadIndex(drivers []Driver, orders []Order, table TaskTimeTable, cfg Config) WorkloadIndex {
	index := make(WorkloadIndex, len(drivers))
	for _, d := range drivers {
		index[d.ID] = CommittedHours(d.ID, orders, table, nil, cfg)
	}
	return index
}
