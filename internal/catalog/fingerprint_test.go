package catalog

import "testing"

func TestSchemaFingerprint_OrderIndependent(t *testing.T) {
	a := []Property{
		{Name: "Name", Type: PropTitle},
		{Name: "Difficulty", Type: PropSelect, Options: []string{"Easy", "Hard"}},
		{Name: "#track", Type: PropMultiSelect},
	}
	b := []Property{a[2], a[0], a[1]}

	if SchemaFingerprint(a) != SchemaFingerprint(b) {
		t.Error("fingerprint should not depend on property order")
	}
}

func TestSchemaFingerprint_DetectsTypeChange(t *testing.T) {
	a := []Property{{Name: "Difficulty", Type: PropSelect}}
	b := []Property{{Name: "Difficulty", Type: PropNumber}}
	if SchemaFingerprint(a) == SchemaFingerprint(b) {
		t.Error("type change should alter the fingerprint")
	}
}

func TestSchemaFingerprint_DetectsRename(t *testing.T) {
	a := []Property{{Name: "Pattern", Type: PropSelect}}
	b := []Property{{Name: "Patterns", Type: PropSelect}}
	if SchemaFingerprint(a) == SchemaFingerprint(b) {
		t.Error("rename should alter the fingerprint")
	}
}

func TestSchemaFingerprint_IgnoresOptionChurn(t *testing.T) {
	// Option lists change constantly; only name/type/marker shape counts.
	a := []Property{{Name: "Result", Type: PropSelect, Options: []string{"Solved"}}}
	b := []Property{{Name: "Result", Type: PropSelect, Options: []string{"Solved", "Stuck"}}}
	if SchemaFingerprint(a) != SchemaFingerprint(b) {
		t.Error("option changes should not alter the fingerprint")
	}
}
