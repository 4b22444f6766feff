package domain

import (
	"sort"
	"strings"
)

// Registry is the process-wide domain configuration: the domain→type
// table, per-type weekly practice floors, and the title keywords and
// typical property names used by collection discovery. It is built once
// at startup and injected; components never reach for package globals,
// so tests can supply their own tables.
type Registry struct {
	types    map[string]Type     // lowercased domain name → type
	names    map[string]string    // lowercased domain name → canonical name
	keywords map[string][]string  // canonical domain name → title keywords
	props    map[string][]string  // canonical domain name → typical property names
	floors   map[Type]int         // type → weekly floor minutes
	fallback int                  // floor for unknown types
}

// Entry describes one domain in a Registry.
type Entry struct {
	Name     string
	Type     Type
	Keywords []string
	Props    []string
}

// NewRegistry builds a Registry from domain entries and a floor table.
// Lookups are case-insensitive on domain name.
func NewRegistry(entries []Entry, floors map[Type]int, fallbackFloor int) *Registry {
	r := &Registry{
		types:    make(map[string]Type, len(entries)),
		names:    make(map[string]string, len(entries)),
		keywords: make(map[string][]string, len(entries)),
		props:    make(map[string][]string, len(entries)),
		floors:   floors,
		fallback: fallbackFloor,
	}
	for _, e := range entries {
		key := strings.ToLower(e.Name)
		r.types[key] = e.Type
		r.names[key] = e.Name
		r.keywords[e.Name] = e.Keywords
		r.props[e.Name] = e.Props
	}
	return r
}

// Classify maps a domain name to its type. Unknown names default to
// fundamentals. Pure lookup, no failure modes.
func (r *Registry) Classify(domainName string) Type {
	if t, ok := r.types[strings.ToLower(domainName)]; ok {
		return t
	}
	return TypeFundamentals
}

// Canonical returns the registry spelling of a domain name and whether
// the name is known.
func (r *Registry) Canonical(domainName string) (string, bool) {
	name, ok := r.names[strings.ToLower(domainName)]
	return name, ok
}

// WeeklyFloor returns the weekly practice floor in minutes for a type.
func (r *Registry) WeeklyFloor(t Type) int {
	if f, ok := r.floors[t]; ok {
		return f
	}
	return r.fallback
}

// Keywords returns the title keywords for a domain, for discovery
// confidence scoring.
func (r *Registry) Keywords(domainName string) []string {
	return r.keywords[domainName]
}

// TypicalProps returns the property names typically present on a
// domain's collections.
func (r *Registry) TypicalProps(domainName string) []string {
	return r.props[domainName]
}

// Domains returns all registered domain names in lexicographic order.
func (r *Registry) Domains() []string {
	names := make([]string, 0, len(r.names))
	for _, n := range r.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultFloors is the standard weekly floor table in minutes.
func DefaultFloors() map[Type]int {
	return map[Type]int{
		TypeFundamentals: 60,
		TypeCoding:       120,
		TypeInterview:    30,
		TypeSpice:        10,
	}
}

// DefaultFallbackFloor is the weekly floor for unrecognized types.
const DefaultFallbackFloor = 30

// DefaultEntries returns the standard interview-prep domain table.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Name:     "DSA",
			Type:     TypeCoding,
			Keywords: []string{"dsa", "leetcode", "algorithm", "data structure", "coding"},
			Props:    []string{"Difficulty", "Pattern", "Link", "Topic"},
		},
		{
			Name:     "System Design",
			Type:     TypeInterview,
			Keywords: []string{"system design", "architecture", "scalability", "hld", "lld"},
			Props:    []string{"Scale", "Component", "Scenario"},
		},
		{
			Name:     "Behavioral",
			Type:     TypeInterview,
			Keywords: []string{"behavioral", "behavioural", "star", "stories", "hr"},
			Props:    []string{"Situation", "Company", "Question"},
		},
		{
			Name:     "OOP",
			Type:     TypeFundamentals,
			Keywords: []string{"oop", "object oriented", "design pattern"},
			Props:    []string{"Concept", "Language"},
		},
		{
			Name:     "OS",
			Type:     TypeFundamentals,
			Keywords: []string{"operating system", "os concepts", "process", "thread"},
			Props:    []string{"Concept", "Topic"},
		},
		{
			Name:     "DBMS",
			Type:     TypeFundamentals,
			Keywords: []string{"dbms", "database", "sql", "normalization"},
			Props:    []string{"Concept", "Query", "Topic"},
		},
		{
			Name:     "Networks",
			Type:     TypeFundamentals,
			Keywords: []string{"network", "tcp", "http", "protocol"},
			Props:    []string{"Concept", "Layer", "Topic"},
		},
		{
			Name:     "Puzzles",
			Type:     TypeSpice,
			Keywords: []string{"puzzle", "brainteaser", "riddle"},
			Props:    []string{"Category"},
		},
		{
			Name:     "Aptitude",
			Type:     TypeSpice,
			Keywords: []string{"aptitude", "quant", "logical reasoning"},
			Props:    []string{"Category", "Formula"},
		},
	}
}

// DefaultRegistry builds the standard Registry.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultEntries(), DefaultFloors(), DefaultFallbackFloor)
}
