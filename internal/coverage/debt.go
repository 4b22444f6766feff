// Package coverage converts a domain's recent practice time and backlog
// into a single 0–1 debt score: how urgently the domain needs attention.
package coverage

const (
	// DefaultExternalWeight discounts self-reported outside practice,
	// which can't be verified against the attempt log.
	DefaultExternalWeight = 0.4

	// DefaultFloorWeight and DefaultBacklogWeight blend the two debt
	// components.
	DefaultFloorWeight   = 0.6
	DefaultBacklogWeight = 0.4

	// DefaultBacklogSmoothing keeps small backlogs from saturating the
	// backlog component.
	DefaultBacklogSmoothing = 5
)

// Config holds the debt-model weights. Zero fields use defaults.
type Config struct {
	ExternalWeight   float64
	FloorWeight      float64
	BacklogWeight    float64
	BacklogSmoothing float64
}

// DefaultConfig returns the standard debt weights.
func DefaultConfig() Config {
	return Config{
		ExternalWeight:   DefaultExternalWeight,
		FloorWeight:      DefaultFloorWeight,
		BacklogWeight:    DefaultBacklogWeight,
		BacklogSmoothing: DefaultBacklogSmoothing,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ExternalWeight <= 0 {
		c.ExternalWeight = d.ExternalWeight
	}
	if c.FloorWeight <= 0 {
		c.FloorWeight = d.FloorWeight
	}
	if c.BacklogWeight <= 0 {
		c.BacklogWeight = d.BacklogWeight
	}
	if c.BacklogSmoothing <= 0 {
		c.BacklogSmoothing = d.BacklogSmoothing
	}
	return c
}

// Input is one domain's practice picture for the current week.
type Input struct {
	WeeklyFloorMinutes    int
	MinutesLast7d         int
	ExternalMinutesLast7d int
	RemainingUnits        int
	CompletedUnits        int
}

// Debt computes the 0–1 coverage debt for a domain. Higher means more
// under-practiced.
func Debt(in Input, cfg Config) float64 {
	cfg = cfg.withDefaults()

	floor := float64(in.WeeklyFloorMinutes)
	practiced := float64(in.MinutesLast7d) + cfg.ExternalWeight*float64(in.ExternalMinutesLast7d)

	shortfall := floor - practiced
	if shortfall < 0 {
		shortfall = 0
	}
	denom := floor
	if denom < 1 {
		denom = 1
	}
	floorDebt := shortfall / denom

	remaining := float64(in.RemainingUnits)
	completed := float64(in.CompletedUnits)
	backlogDebt := remaining / (remaining + completed + cfg.BacklogSmoothing)

	debt := cfg.FloorWeight*floorDebt + cfg.BacklogWeight*backlogDebt
	if debt < 0 {
		return 0
	}
	if debt > 1 {
		return 1
	}
	return debt
}
