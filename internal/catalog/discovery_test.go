package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/prepdeck/internal/domain"
)

type fakeDirectory struct {
	cols []Collection
	err  error
}

func (d *fakeDirectory) ListCollections(ctx context.Context) ([]Collection, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.cols, nil
}

func attemptsStoreCol(id string) Collection {
	return Collection{
		ID:    id,
		Title: "Attempt Log",
		Properties: []Property{
			{Name: "Name", Type: PropTitle},
			{Name: "Item", Type: PropRelation},
			{Name: "Result", Type: PropSelect, Options: []string{"Solved", "Partial", "Stuck", "Skipped"}},
			{Name: "Time Spent", Type: PropNumber},
			{Name: "Confidence", Type: PropSelect, Options: []string{"Low", "Medium", "High"}},
		},
	}
}

func dsaCol(id, title string) Collection {
	return Collection{
		ID:        id,
		Title:     title,
		ItemCount: 50,
		Properties: []Property{
			{Name: "Name", Type: PropTitle},
			{Name: "Difficulty", Type: PropSelect, Options: []string{"Easy", "Medium", "Hard"}},
			{Name: "Pattern", Type: PropSelect},
			{Name: "Link", Type: PropURL},
			{Name: "#track", Type: PropMultiSelect},
		},
	}
}

func newMapper(cols ...Collection) *Mapper {
	return NewMapper(&fakeDirectory{cols: cols}, domain.DefaultRegistry())
}

func TestPrepareMapping_AutoAcceptSingleHighConfidence(t *testing.T) {
	m := newMapper(attemptsStoreCol("store"), dsaCol("db-dsa", "LeetCode DSA Grind"))

	prop, err := m.PrepareMapping(context.Background(), nil)
	if err != nil {
		t.Fatalf("PrepareMapping: %v", err)
	}
	if prop.AttemptsStore.ID != "store" {
		t.Errorf("AttemptsStore = %q, want store", prop.AttemptsStore.ID)
	}
	accepted := prop.AutoAccept["DSA"]
	if len(accepted) != 1 || accepted[0].Collection.ID != "db-dsa" {
		t.Fatalf("AutoAccept[DSA] = %+v, want single db-dsa", accepted)
	}
	if accepted[0].Confidence < AutoAcceptThreshold {
		t.Errorf("confidence %f below auto-accept threshold", accepted[0].Confidence)
	}
}

func TestPrepareMapping_MultipleHighConfidenceNeverAutoAccepted(t *testing.T) {
	m := newMapper(
		attemptsStoreCol("store"),
		dsaCol("db-a", "LeetCode DSA Grind"),
		dsaCol("db-b", "DSA coding problems"),
	)

	prop, err := m.PrepareMapping(context.Background(), nil)
	if err != nil {
		t.Fatalf("PrepareMapping: %v", err)
	}
	if len(prop.AutoAccept["DSA"]) != 0 {
		t.Errorf("ambiguous domain must not auto-accept, got %+v", prop.AutoAccept["DSA"])
	}
	if len(prop.Warnings["DSA"]) != 2 {
		t.Errorf("both candidates should require confirmation, got %+v", prop.Warnings["DSA"])
	}
}

func TestPrepareMapping_ConfidenceFloorOnSchemaSignals(t *testing.T) {
	// Misleading title, but marker tags + typical properties + item
	// shape align: confidence must still reach 0.6.
	col := dsaCol("db-x", "Random things I collected")
	m := newMapper(attemptsStoreCol("store"), col)

	prop, err := m.PrepareMapping(context.Background(), nil)
	if err != nil {
		t.Fatalf("PrepareMapping: %v", err)
	}
	cands := prop.Warnings["DSA"]
	if len(cands) != 1 {
		t.Fatalf("expected one warn candidate, got %+v", prop.Warnings)
	}
	if cands[0].Confidence < 0.6 {
		t.Errorf("confidence = %f, want >= 0.6 from schema-signal floor", cands[0].Confidence)
	}
}

func TestPrepareMapping_UnclassifiedBlocked(t *testing.T) {
	col := Collection{
		ID:    "db-misc",
		Title: "Groceries",
		Properties: []Property{
			{Name: "Name", Type: PropTitle},
			{Name: "Bought", Type: PropCheckbox},
		},
	}
	m := newMapper(attemptsStoreCol("store"), col)

	prop, err := m.PrepareMapping(context.Background(), nil)
	if err != nil {
		t.Fatalf("PrepareMapping: %v", err)
	}
	if len(prop.Blocks) != 1 || prop.Blocks[0].Collection.ID != "db-misc" {
		t.Fatalf("Blocks = %+v, want db-misc blocked", prop.Blocks)
	}
}

func TestPrepareMapping_NoAttemptsStoreFails(t *testing.T) {
	m := newMapper(dsaCol("db-dsa", "LeetCode DSA Grind"))

	_, err := m.PrepareMapping(context.Background(), nil)
	var want *ErrNoAttemptsStore
	if !errors.As(err, &want) {
		t.Fatalf("err = %v, want ErrNoAttemptsStore", err)
	}
}

func TestPrepareMapping_ResultWithoutSolvedRejected(t *testing.T) {
	store := attemptsStoreCol("store")
	for i, p := range store.Properties {
		if p.Name == "Result" {
			store.Properties[i].Options = []string{"Failed"}
		}
	}
	m := newMapper(store, dsaCol("db-dsa", "LeetCode DSA Grind"))

	_, err := m.PrepareMapping(context.Background(), nil)
	var want *ErrNoAttemptsStore
	if !errors.As(err, &want) {
		t.Fatalf("err = %v, want ErrNoAttemptsStore when Result lacks Solved", err)
	}
}

func TestPrepareMapping_AmbiguousAttemptsStoreFails(t *testing.T) {
	m := newMapper(attemptsStoreCol("store-1"), attemptsStoreCol("store-2"))

	_, err := m.PrepareMapping(context.Background(), nil)
	var ambiguous *ErrAmbiguousAttemptsStore
	if !errors.As(err, &ambiguous) {
		t.Fatalf("err = %v, want ErrAmbiguousAttemptsStore", err)
	}
	if len(ambiguous.CandidateIDs) != 2 {
		t.Errorf("CandidateIDs = %v, want both stores listed", ambiguous.CandidateIDs)
	}
}

func TestPrepareMapping_DirectoryErrorFailsWhole(t *testing.T) {
	sentinel := errors.New("directory unreachable")
	m := NewMapper(&fakeDirectory{err: sentinel}, domain.DefaultRegistry())

	prop, err := m.PrepareMapping(context.Background(), nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want wrapped sentinel", err)
	}
	if prop != nil {
		t.Error("no partial proposal on failure")
	}
}

func TestPrepareMapping_FingerprintDrift(t *testing.T) {
	col := dsaCol("db-dsa", "LeetCode DSA Grind")
	m := newMapper(attemptsStoreCol("store"), col)

	prev := map[string]string{"db-dsa": "stale-fingerprint"}
	prop, err := m.PrepareMapping(context.Background(), prev)
	if err != nil {
		t.Fatalf("PrepareMapping: %v", err)
	}
	if !prop.FingerprintChanged {
		t.Fatal("FingerprintChanged should be true on drift")
	}
	if len(prop.FingerprintChanges) != 1 || prop.FingerprintChanges[0].CollectionID != "db-dsa" {
		t.Errorf("FingerprintChanges = %+v, want db-dsa listed", prop.FingerprintChanges)
	}
}

func TestPrepareMapping_NoDriftWhenFingerprintsMatch(t *testing.T) {
	col := dsaCol("db-dsa", "LeetCode DSA Grind")
	m := newMapper(attemptsStoreCol("store"), col)

	prev := map[string]string{"db-dsa": SchemaFingerprint(col.Properties)}
	prop, err := m.PrepareMapping(context.Background(), prev)
	if err != nil {
		t.Fatalf("PrepareMapping: %v", err)
	}
	if prop.FingerprintChanged {
		t.Error("matching fingerprints should not flag drift")
	}
}

func TestPrepareMapping_DeterministicUnderCollectionOrder(t *testing.T) {
	a := dsaCol("db-a", "LeetCode DSA Grind")
	b := dsaCol("db-b", "DSA coding problems")
	store := attemptsStoreCol("store")

	m1 := newMapper(store, a, b)
	m2 := newMapper(b, store, a)

	p1, err := m1.PrepareMapping(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := m2.PrepareMapping(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}

	w1, w2 := p1.Warnings["DSA"], p2.Warnings["DSA"]
	if len(w1) != len(w2) {
		t.Fatalf("warning counts differ: %d vs %d", len(w1), len(w2))
	}
	for i := range w1 {
		if w1[i].Collection.ID != w2[i].Collection.ID || w1[i].Confidence != w2[i].Confidence {
			t.Errorf("warning %d differs under reordering: %+v vs %+v", i, w1[i], w2[i])
		}
	}
}
