package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/domain"
)

const (
	// AutoAcceptThreshold and WarnThreshold gate how a classified
	// collection enters the proposal. Below WarnThreshold it is blocked.
	AutoAcceptThreshold = 0.7
	WarnThreshold       = 0.4

	// TitleConfidenceCap limits how much a title alone can contribute;
	// titles are weak evidence.
	TitleConfidenceCap = 0.5

	titleKeywordWeight = 0.25
	markerBonus        = 0.3
	propBoostMax       = 0.3
	combinedCap        = 0.9
	signalFloor        = 0.6
)

// ambiguousTitleWords are generic words that make a title structurally
// ambiguous; schema evidence then outweighs the title 70/30.
var ambiguousTitleWords = []string{"notes", "prep", "misc", "stuff", "general", "tracker"}

// Candidate is a collection classified into a domain with a confidence.
type Candidate struct {
	Collection Collection
	Domain     string
	Confidence float64
}

// Blocked is a collection excluded from the proposal, with the reason.
type Blocked struct {
	Collection Collection
	Reason     string
}

// FingerprintChange records schema drift on a previously confirmed
// collection.
type FingerprintChange struct {
	CollectionID string
	Title        string
	Previous     string
	Current      string
}

// Proposal is a transient mapping recommendation. It is never applied
// automatically: a human consumes it exactly once through an explicit
// confirmation step.
type Proposal struct {
	ID            string
	AttemptsStore Collection

	// AutoAccept holds domains with exactly one high-confidence
	// collection. Multiple high-confidence collections for one domain
	// always land in Warnings instead; ambiguity is never resolved
	// silently.
	AutoAccept map[string][]Candidate
	Warnings   map[string][]Candidate
	Blocks     []Blocked

	FingerprintChanged bool
	FingerprintChanges []FingerprintChange
}

// Domains returns every domain present in the proposal, sorted.
func (p *Proposal) Domains() []string {
	seen := make(map[string]bool)
	for d := range p.AutoAccept {
		seen[d] = true
	}
	for d := range p.Warnings {
		seen[d] = true
	}
	names := make([]string, 0, len(seen))
	for d := range seen {
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}

// Mapper runs collection discovery against a directory.
type Mapper struct {
	dir Directory
	reg *domain.Registry
}

// NewMapper creates a Mapper.
func NewMapper(dir Directory, reg *domain.Registry) *Mapper {
	return &Mapper{dir: dir, reg: reg}
}

// PrepareMapping inspects every reachable collection and produces a
// Proposal. previousFingerprints maps collection id → the fingerprint
// confirmed last time; any drift is surfaced on the proposal.
//
// Discovery is fail-fast: unreachable or malformed metadata, and a
// missing or ambiguous attempts store, fail the whole call with no
// partial proposal.
func (m *Mapper) PrepareMapping(ctx context.Context, previousFingerprints map[string]string) (*Proposal, error) {
	cols, err := m.dir.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	for i := range cols {
		if cols[i].Fingerprint == "" {
			cols[i].Fingerprint = SchemaFingerprint(cols[i].Properties)
		}
	}
	// Stable processing order regardless of directory iteration order.
	sort.Slice(cols, func(i, j int) bool { return cols[i].ID < cols[j].ID })

	store, rest, err := findAttemptsStore(cols)
	if err != nil {
		return nil, err
	}

	prop := &Proposal{
		ID:            uuid.NewString(),
		AttemptsStore: store,
		AutoAccept:    make(map[string][]Candidate),
		Warnings:      make(map[string][]Candidate),
	}

	byDomain := make(map[string][]Candidate)
	for _, c := range rest {
		name, conf := m.classify(c)
		if name == "" {
			prop.Blocks = append(prop.Blocks, Blocked{
				Collection: c,
				Reason:     "unclassified: no domain signals in title or schema",
			})
			continue
		}
		if conf < WarnThreshold {
			prop.Blocks = append(prop.Blocks, Blocked{
				Collection: c,
				Reason:     fmt.Sprintf("confidence %.2f below threshold %.2f for %s", conf, WarnThreshold, name),
			})
			continue
		}
		c.Domain = name
		byDomain[name] = append(byDomain[name], Candidate{Collection: c, Domain: name, Confidence: conf})
	}

	for name, cands := range byDomain {
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].Confidence != cands[j].Confidence {
				return cands[i].Confidence > cands[j].Confidence
			}
			return cands[i].Collection.ID < cands[j].Collection.ID
		})

		high := 0
		for _, cand := range cands {
			if cand.Confidence >= AutoAcceptThreshold {
				high++
			}
		}
		if high == 1 && cands[0].Confidence >= AutoAcceptThreshold {
			prop.AutoAccept[name] = cands[:1]
			if len(cands) > 1 {
				prop.Warnings[name] = append(prop.Warnings[name], cands[1:]...)
			}
		} else {
			// Zero or multiple high-confidence candidates: a human picks.
			prop.Warnings[name] = cands
		}
	}

	for _, c := range cols {
		prev, ok := previousFingerprints[c.ID]
		if ok && prev != c.Fingerprint {
			prop.FingerprintChanged = true
			prop.FingerprintChanges = append(prop.FingerprintChanges, FingerprintChange{
				CollectionID: c.ID,
				Title:        c.Title,
				Previous:     prev,
				Current:      c.Fingerprint,
			})
		}
	}

	return prop, nil
}

// findAttemptsStore locates the one collection carrying the attempts
// schema by exact introspection: a relation "Item" property, a select
// "Result" property whose options include "Solved", and a numeric
// time-spent property. Zero and multiple matches are both hard failures.
func findAttemptsStore(cols []Collection) (Collection, []Collection, error) {
	var matches []Collection
	var rest []Collection
	for _, c := range cols {
		if isAttemptsStore(c) {
			matches = append(matches, c)
		} else {
			rest = append(rest, c)
		}
	}
	switch len(matches) {
	case 0:
		return Collection{}, nil, &ErrNoAttemptsStore{}
	case 1:
		return matches[0], rest, nil
	default:
		ids := make([]string, len(matches))
		for i, c := range matches {
			ids[i] = c.ID
		}
		return Collection{}, nil, &ErrAmbiguousAttemptsStore{CandidateIDs: ids}
	}
}

func isAttemptsStore(c Collection) bool {
	var hasItem, hasResult, hasTime bool
	for _, p := range c.Properties {
		name := normalizeName(p.Name)
		switch {
		case p.Type == PropRelation && name == "item":
			hasItem = true
		case p.Type == PropSelect && name == "result":
			for _, opt := range p.Options {
				if opt == "Solved" {
					hasResult = true
				}
			}
		case p.Type == PropNumber && (name == "time spent" || name == "minutes"):
			hasTime = true
		}
	}
	return hasItem && hasResult && hasTime
}

// classify scores a collection against every registered domain and
// returns the best domain with its confidence, or ("", 0) when the
// collection shows no domain signals at all.
func (m *Mapper) classify(c Collection) (string, float64) {
	title := strings.ToLower(c.Title)
	markers := hasMarkerProps(c.Properties)
	itemShape := hasItemShape(c.Properties)

	bestName := ""
	bestConf := 0.0
	anySignal := false

	for _, name := range m.reg.Domains() {
		titleConf := titleConfidence(title, m.reg.Keywords(name))
		propFrac := propFraction(c.Properties, m.reg.TypicalProps(name))

		if titleConf == 0 && propFrac == 0 {
			continue
		}
		anySignal = true

		schemaConf := propBoostMax * propFrac
		if markers {
			schemaConf += markerBonus
		}

		var conf float64
		if ambiguousTitle(title) {
			conf = 0.7*schemaConf + 0.3*titleConf
		} else {
			conf = titleConf + schemaConf
			if conf > combinedCap {
				conf = combinedCap
			}
		}

		// Aligned schema signals floor the confidence even when the
		// title is misleading.
		if markers && propFrac > 0 && itemShape && conf < signalFloor {
			conf = signalFloor
		}

		if conf > bestConf {
			bestName, bestConf = name, conf
		}
	}

	if !anySignal {
		return "", 0
	}
	return bestName, bestConf
}

func titleConfidence(lowerTitle string, keywords []string) float64 {
	conf := 0.0
	for _, kw := range keywords {
		if strings.Contains(lowerTitle, kw) {
			conf += titleKeywordWeight
		}
	}
	if conf > TitleConfidenceCap {
		conf = TitleConfidenceCap
	}
	return conf
}

func propFraction(props []Property, typical []string) float64 {
	if len(typical) == 0 {
		return 0
	}
	present := make(map[string]bool, len(props))
	for _, p := range props {
		present[normalizeName(p.Name)] = true
	}
	hits := 0
	for _, name := range typical {
		if present[strings.ToLower(name)] {
			hits++
		}
	}
	return float64(hits) / float64(len(typical))
}

func ambiguousTitle(lowerTitle string) bool {
	for _, w := range ambiguousTitleWords {
		if strings.Contains(lowerTitle, w) {
			return true
		}
	}
	return false
}

func hasMarkerProps(props []Property) bool {
	for _, p := range props {
		if p.IsMarker() {
			return true
		}
	}
	return false
}

// hasItemShape checks for the item/status/link column trio typical of a
// practice-item collection.
func hasItemShape(props []Property) bool {
	var hasTitle, hasStatus, hasLink bool
	for _, p := range props {
		switch p.Type {
		case PropTitle:
			hasTitle = true
		case PropStatus, PropSelect:
			hasStatus = true
		case PropURL:
			hasLink = true
		}
	}
	return hasTitle && hasStatus && hasLink
}

// normalizeName lowercases a property name and strips the marker prefix.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, MarkerPrefix))
}
