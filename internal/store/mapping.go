package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/mapping"
)

// mappingRepo implements MappingRepo backed by ent.
type mappingRepo struct {
	client *ent.Client
}

func (r *mappingRepo) Save(ctx context.Context, m MappingData) error {
	existing, err := r.client.Mapping.Query().
		Where(mapping.CollectionID(m.CollectionID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetDomain(m.Domain).
			SetTitle(m.Title).
			SetFingerprint(m.Fingerprint).
			SetAttemptsStore(m.AttemptsStore).
			SetConfirmedAt(m.ConfirmedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update mapping %s: %w", m.CollectionID, err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.Mapping.Create().
			SetCollectionID(m.CollectionID).
			SetDomain(m.Domain).
			SetTitle(m.Title).
			SetFingerprint(m.Fingerprint).
			SetAttemptsStore(m.AttemptsStore).
			SetConfirmedAt(m.ConfirmedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mapping %s: %w", m.CollectionID, err)
		}
		return nil
	default:
		return fmt.Errorf("query mapping %s: %w", m.CollectionID, err)
	}
}

func (r *mappingRepo) List(ctx context.Context) ([]MappingData, error) {
	rows, err := r.client.Mapping.Query().
		Order(ent.Asc(mapping.FieldCollectionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mappings: %w", err)
	}

	out := make([]MappingData, 0, len(rows))
	for _, m := range rows {
		out = append(out, MappingData{
			CollectionID:  m.CollectionID,
			Domain:        m.Domain,
			Title:         m.Title,
			Fingerprint:   m.Fingerprint,
			AttemptsStore: m.AttemptsStore,
			ConfirmedAt:   m.ConfirmedAt,
		})
	}
	return out, nil
}

func (r *mappingRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.Mapping.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete mappings: %w", err)
	}
	return nil
}
