package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnconfirmedMapping indicates no confirmed collection mapping
// exists yet. Planning requires a confirmed mapping.
var ErrUnconfirmedMapping = errors.New("no confirmed collection mapping")

// ErrNoAttemptsStore indicates no collection matched the attempts-store
// schema. Discovery cannot proceed without one.
type ErrNoAttemptsStore struct{}

func (e *ErrNoAttemptsStore) Error() string {
	return "no attempts store found: need a collection with a relation \"Item\" property, " +
		"a select \"Result\" property including \"Solved\", and a numeric time-spent property"
}

// ErrAmbiguousAttemptsStore indicates more than one collection matched
// the attempts-store schema.
type ErrAmbiguousAttemptsStore struct {
	CandidateIDs []string
}

func (e *ErrAmbiguousAttemptsStore) Error() string {
	return fmt.Sprintf("ambiguous attempts store: %d candidates match (%s)",
		len(e.CandidateIDs), strings.Join(e.CandidateIDs, ", "))
}

// ErrInvalidMetadata indicates the directory returned collection
// metadata that failed schema validation. The whole discovery call
// fails; there are no partial proposals.
type ErrInvalidMetadata struct {
	Err error
}

func (e *ErrInvalidMetadata) Error() string {
	return fmt.Sprintf("invalid collection metadata: %v", e.Err)
}

func (e *ErrInvalidMetadata) Unwrap() error { return e.Err }
