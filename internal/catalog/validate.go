package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Raw directory payloads are validated against JSON Schemas before
// parsing, so malformed metadata fails the discovery call outright
// instead of leaking partially-shaped data into the engine.

const collectionsSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "item_count", "properties"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string"},
			"item_count": {"type": "integer", "minimum": 0},
			"properties": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["name", "type"],
					"properties": {
						"name": {"type": "string", "minLength": 1},
						"type": {"type": "string", "minLength": 1},
						"options": {"type": "array", "items": {"type": "string"}}
					}
				}
			}
		}
	}
}`

const itemsSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string"},
			"difficulty": {"type": ["integer", "null"], "minimum": 1, "maximum": 5},
			"pattern": {"type": ["string", "null"]}
		}
	}
}`

var schemaCache sync.Map // map[string]*jsonschema.Schema

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(definition)))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", name, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

func validatePayload(schemaName, definition string, raw []byte) (any, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidMetadata{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	compiled, err := compiledSchema(schemaName, definition)
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidMetadata{Err: err}
	}
	return parsed, nil
}

type collectionPayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ItemCount  int    `json:"item_count"`
	Properties []struct {
		Name    string   `json:"name"`
		Type    string   `json:"type"`
		Options []string `json:"options"`
	} `json:"properties"`
}

// ParseCollections validates and parses a raw directory listing into
// strict Collection values with computed fingerprints.
func ParseCollections(raw []byte) ([]Collection, error) {
	if _, err := validatePayload("collections.json", collectionsSchemaJSON, raw); err != nil {
		return nil, err
	}

	var payload []collectionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidMetadata{Err: err}
	}

	cols := make([]Collection, 0, len(payload))
	for _, cp := range payload {
		c := Collection{
			ID:        cp.ID,
			Title:     cp.Title,
			ItemCount: cp.ItemCount,
		}
		for _, pp := range cp.Properties {
			c.Properties = append(c.Properties, Property{
				Name:    pp.Name,
				Type:    PropType(pp.Type),
				Options: pp.Options,
			})
		}
		c.Fingerprint = SchemaFingerprint(c.Properties)
		cols = append(cols, c)
	}
	return cols, nil
}

type itemPayload struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Difficulty *int    `json:"difficulty"`
	Pattern    *string `json:"pattern"`
}

// ParseItems validates and parses a raw item listing. Missing
// difficulties normalize to DefaultDifficulty; the caller assigns the
// domain from the confirmed mapping.
func ParseItems(raw []byte, collectionID string) ([]Item, error) {
	if _, err := validatePayload("items.json", itemsSchemaJSON, raw); err != nil {
		return nil, err
	}

	var payload []itemPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidMetadata{Err: err}
	}

	items := make([]Item, 0, len(payload))
	for _, ip := range payload {
		it := Item{
			ID:                 ip.ID,
			Name:               ip.Name,
			Difficulty:         DefaultDifficulty,
			SourceCollectionID: collectionID,
		}
		if ip.Difficulty != nil {
			it.Difficulty = *ip.Difficulty
		}
		if ip.Pattern != nil {
			it.Pattern = *ip.Pattern
		}
		items = append(items, it)
	}
	return items, nil
}
