package attempts

import "time"

// Result is the outcome of a single practice attempt.
type Result string

const (
	ResultSolved  Result = "Solved"
	ResultPartial Result = "Partial"
	ResultStuck   Result = "Stuck"
	ResultSkipped Result = "Skipped"
)

// IsSuccess reports whether the result counts as a success for streak
// and review purposes.
func (r Result) IsSuccess() bool {
	return r == ResultSolved || r == ResultPartial
}

// IsFailure reports whether the result counts as a failure.
func (r Result) IsFailure() bool {
	return r == ResultStuck || r == ResultSkipped
}

// Confidence is the learner's self-reported confidence on an attempt.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Score maps confidence to a 0–1 value for averaging.
func (c Confidence) Score() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.5
	default:
		return 0.0
	}
}

// Attempt is one immutable practice record. Attempts are append-only
// inputs; the engine never mutates or deletes them.
type Attempt struct {
	ItemID           string
	Result           Result
	TimeSpentMinutes int
	Confidence       Confidence
	MistakeTags      []string
	External         bool // self-reported practice outside the tracker
	CreatedAt        time.Time

	// Sequence is the attempt's position in the caller's event log.
	// It disambiguates recency between attempts with identical
	// timestamps; zero means no log position is known.
	Sequence int64
}
