package domain

import "testing"

func TestClassify_KnownDomains(t *testing.T) {
	r := DefaultRegistry()

	cases := []struct {
		name string
		want Type
	}{
		{"DSA", TypeCoding},
		{"System Design", TypeInterview},
		{"Behavioral", TypeInterview},
		{"OOP", TypeFundamentals},
		{"Puzzles", TypeSpice},
	}
	for _, c := range cases {
		if got := r.Classify(c.name); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	if got := r.Classify("dsa"); got != TypeCoding {
		t.Errorf("Classify(\"dsa\") = %q, want %q", got, TypeCoding)
	}
	if got := r.Classify("SYSTEM DESIGN"); got != TypeInterview {
		t.Errorf("Classify(\"SYSTEM DESIGN\") = %q, want %q", got, TypeInterview)
	}
}

func TestClassify_UnknownDefaultsToFundamentals(t *testing.T) {
	r := DefaultRegistry()
	if got := r.Classify("Underwater Basket Weaving"); got != TypeFundamentals {
		t.Errorf("Classify(unknown) = %q, want %q", got, TypeFundamentals)
	}
}

func TestWeeklyFloor(t *testing.T) {
	r := DefaultRegistry()

	cases := []struct {
		t    Type
		want int
	}{
		{TypeFundamentals, 60},
		{TypeCoding, 120},
		{TypeInterview, 30},
		{TypeSpice, 10},
		{Type("bogus"), DefaultFallbackFloor},
	}
	for _, c := range cases {
		if got := r.WeeklyFloor(c.t); got != c.want {
			t.Errorf("WeeklyFloor(%q) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestDomains_Sorted(t *testing.T) {
	r := DefaultRegistry()
	names := r.Domains()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Domains() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestRegistry_Override(t *testing.T) {
	r := NewRegistry(
		[]Entry{{Name: "Kata", Type: TypeCoding}},
		map[Type]int{TypeCoding: 45},
		15,
	)
	if got := r.Classify("kata"); got != TypeCoding {
		t.Errorf("Classify(\"kata\") = %q, want coding", got)
	}
	if got := r.WeeklyFloor(TypeCoding); got != 45 {
		t.Errorf("WeeklyFloor(coding) = %d, want 45", got)
	}
	if got := r.WeeklyFloor(TypeSpice); got != 15 {
		t.Errorf("WeeklyFloor(spice) = %d, want fallback 15", got)
	}
}
