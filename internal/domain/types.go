package domain

// Type is the coarse category of a domain. It parameterizes every
// downstream policy: weekly practice floors, prioritization strategy,
// and focus-mode slot restriction.
type Type string

const (
	TypeFundamentals Type = "fundamentals"
	TypeCoding       Type = "coding"
	TypeInterview    Type = "interview"
	TypeSpice        Type = "spice"
)

// Mode is the learning phase of a domain. It alters the prioritizer's
// sort policy. Currently every domain starts in ModeLearning; mode
// inference from attempt history is a planned follow-up.
type Mode string

const (
	ModeLearning Mode = "learning"
	ModeRevision Mode = "revision"
	ModePolish   Mode = "polish"
)

// Domain is a named subject area (e.g. "DSA") with a fixed type and a
// current mode.
type Domain struct {
	Name string
	Type Type
	Mode Mode
}
