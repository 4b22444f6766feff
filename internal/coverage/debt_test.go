package coverage

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDebt_NoPractice(t *testing.T) {
	// floorDebt = 1.0, backlogDebt = 20/(20+0+5) = 0.8
	// debt = 0.6*1.0 + 0.4*0.8 = 0.92
	got := Debt(Input{
		WeeklyFloorMinutes: 120,
		RemainingUnits:     20,
	}, DefaultConfig())
	if !almostEqual(got, 0.92) {
		t.Errorf("Debt = %f, want 0.92", got)
	}
}

func TestDebt_FloorMet(t *testing.T) {
	// Practiced over the floor: floorDebt = 0.
	// backlogDebt = 5/(5+10+5) = 0.25; debt = 0.4*0.25 = 0.1
	got := Debt(Input{
		WeeklyFloorMinutes: 60,
		MinutesLast7d:      90,
		RemainingUnits:     5,
		CompletedUnits:     10,
	}, DefaultConfig())
	if !almostEqual(got, 0.1) {
		t.Errorf("Debt = %f, want 0.1", got)
	}
}

func TestDebt_ExternalPracticeDiscounted(t *testing.T) {
	// 100 external minutes count as 40: floorDebt = (60-40)/60 = 0.333.
	withExternal := Debt(Input{
		WeeklyFloorMinutes:    60,
		ExternalMinutesLast7d: 100,
	}, DefaultConfig())
	withInternal := Debt(Input{
		WeeklyFloorMinutes: 60,
		MinutesLast7d:      100,
	}, DefaultConfig())
	if withExternal <= withInternal {
		t.Errorf("external practice should pay down less debt: external=%f internal=%f",
			withExternal, withInternal)
	}
	want := 0.6*(20.0/60.0) + 0.4*0.0
	if !almostEqual(withExternal, want) {
		t.Errorf("Debt = %f, want %f", withExternal, want)
	}
}

func TestDebt_BacklogMonotonic(t *testing.T) {
	base := Input{
		WeeklyFloorMinutes: 60,
		MinutesLast7d:      30,
		CompletedUnits:     4,
	}
	prev := -1.0
	for remaining := 0; remaining <= 50; remaining += 5 {
		in := base
		in.RemainingUnits = remaining
		got := Debt(in, DefaultConfig())
		if got < prev {
			t.Fatalf("debt decreased from %f to %f when remaining grew to %d",
				prev, got, remaining)
		}
		prev = got
	}
}

func TestDebt_Bounds(t *testing.T) {
	cases := []Input{
		{},
		{WeeklyFloorMinutes: 0, MinutesLast7d: 1000},
		{WeeklyFloorMinutes: 1000, RemainingUnits: 10000},
		{WeeklyFloorMinutes: 10, MinutesLast7d: 5, RemainingUnits: 3, CompletedUnits: 1},
	}
	for _, in := range cases {
		got := Debt(in, DefaultConfig())
		if got < 0 || got > 1 {
			t.Errorf("Debt(%+v) = %f, out of [0,1]", in, got)
		}
	}
}

func TestDebt_ZeroFloorUsesDenomOne(t *testing.T) {
	// floor=0: shortfall is 0, floorDebt 0/1 = 0; only backlog remains.
	got := Debt(Input{RemainingUnits: 5}, DefaultConfig())
	want := 0.4 * (5.0 / 10.0)
	if !almostEqual(got, want) {
		t.Errorf("Debt = %f, want %f", got, want)
	}
}
