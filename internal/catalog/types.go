// Package catalog models the externally-owned item collections and the
// discovery step that maps them onto domains. Raw collection metadata is
// validated and parsed at this boundary; nothing downstream ever sees an
// untyped payload.
package catalog

import "context"

// PropType is the type of a collection property as reported by the
// external directory.
type PropType string

const (
	PropTitle       PropType = "title"
	PropRichText    PropType = "rich_text"
	PropSelect      PropType = "select"
	PropMultiSelect PropType = "multi_select"
	PropRelation    PropType = "relation"
	PropNumber      PropType = "number"
	PropDate        PropType = "date"
	PropCheckbox    PropType = "checkbox"
	PropURL         PropType = "url"
	PropStatus      PropType = "status"
)

// MarkerPrefix marks properties that were tagged for this tool by the
// collection owner (e.g. "#domain"). Their presence is strong evidence
// that a collection is meant to be tracked.
const MarkerPrefix = "#"

// Property is one column of a collection's schema.
type Property struct {
	Name    string
	Type    PropType
	Options []string // select/multi_select option names, empty otherwise
}

// IsMarker reports whether the property carries the marker prefix.
func (p Property) IsMarker() bool {
	return len(p.Name) >= len(MarkerPrefix) && p.Name[:len(MarkerPrefix)] == MarkerPrefix
}

// Collection is an external, independently-owned group of items.
type Collection struct {
	ID          string
	Title       string
	Domain      string // "" = unclassified
	ItemCount   int
	Properties  []Property
	Fingerprint string
}

// Item is one practice unit, read-only to the engine.
type Item struct {
	ID                 string
	Name               string
	Domain             string
	Difficulty         int // 1–5; missing values normalize to 3
	Pattern            string
	SourceCollectionID string
}

// DefaultDifficulty is assigned when a source item has no difficulty.
const DefaultDifficulty = 3

// Directory lists the reachable collections with their schemas. It is a
// remote directory-listing call owned by the caller's I/O layer.
type Directory interface {
	ListCollections(ctx context.Context) ([]Collection, error)
}

// ItemFetcher returns the full, unpaginated item set for a collection.
type ItemFetcher interface {
	FetchItems(ctx context.Context, collectionID string) ([]Item, error)
}
