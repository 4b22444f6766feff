package compose

import "testing"

func TestCompose_ExactTotalAllModesAndDurations(t *testing.T) {
	cfg := DefaultConfig()
	modes := []FocusMode{FocusBalanced, FocusDSAHeavy, FocusInterviewHeavy}

	for _, mode := range modes {
		for _, total := range cfg.AllowedDurations {
			b := Compose(total, mode, cfg)
			sum := b.ReviewMinutes + b.CoreMinutes + b.BreadthMinutes
			if sum != total {
				t.Errorf("%s/%d: slots sum to %d (%d+%d+%d)", mode, total, sum,
					b.ReviewMinutes, b.CoreMinutes, b.BreadthMinutes)
			}
		}
	}
}

func TestCompose_Balanced45(t *testing.T) {
	b := Compose(45, FocusBalanced, DefaultConfig())

	if b.ReviewMinutes < 5 || b.ReviewMinutes > 8 {
		t.Errorf("Review = %d, want within [5,8]", b.ReviewMinutes)
	}
	if b.CoreMinutes < 20 || b.CoreMinutes > 32 {
		t.Errorf("Core = %d, want within [20,32]", b.CoreMinutes)
	}
	if b.BreadthMinutes < 5 {
		t.Errorf("Breadth = %d, want >= 5", b.BreadthMinutes)
	}
	if b.ReviewMinutes+b.CoreMinutes+b.BreadthMinutes != 45 {
		t.Errorf("slots do not sum to 45")
	}
}

func TestCompose_SlotsWithinRanges(t *testing.T) {
	cfg := DefaultConfig()
	for mode, r := range cfg.Ranges {
		for _, total := range cfg.AllowedDurations {
			b := Compose(total, mode, cfg)
			if b.ReviewMinutes < r.Review.Min || b.ReviewMinutes > r.Review.Max {
				t.Errorf("%s/%d: Review %d outside [%d,%d]", mode, total,
					b.ReviewMinutes, r.Review.Min, r.Review.Max)
			}
			if b.CoreMinutes < r.Core.Min || b.CoreMinutes > r.Core.Max {
				t.Errorf("%s/%d: Core %d outside [%d,%d]", mode, total,
					b.CoreMinutes, r.Core.Min, r.Core.Max)
			}
			if b.BreadthMinutes < 0 || b.BreadthMinutes > r.Breadth.Max {
				t.Errorf("%s/%d: Breadth %d outside [0,%d]", mode, total,
					b.BreadthMinutes, r.Breadth.Max)
			}
		}
	}
}

func TestCompose_DisallowedTotalFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	b := Compose(37, FocusBalanced, cfg)
	if b.TotalMinutes != cfg.DefaultDuration {
		t.Errorf("TotalMinutes = %d, want default %d", b.TotalMinutes, cfg.DefaultDuration)
	}
	if b.ReviewMinutes+b.CoreMinutes+b.BreadthMinutes != cfg.DefaultDuration {
		t.Error("fallback budget should still sum exactly")
	}
}

func TestCompose_UnknownModeUsesBalanced(t *testing.T) {
	got := Compose(45, FocusMode("yolo"), DefaultConfig())
	want := Compose(45, FocusBalanced, DefaultConfig())
	if got.ReviewMinutes != want.ReviewMinutes || got.CoreMinutes != want.CoreMinutes ||
		got.BreadthMinutes != want.BreadthMinutes {
		t.Errorf("unknown mode budget %+v differs from balanced %+v", got, want)
	}
	if got.FocusMode != FocusBalanced {
		t.Errorf("FocusMode = %q, want balanced", got.FocusMode)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := Compose(90, FocusDSAHeavy, cfg)
	b := Compose(90, FocusDSAHeavy, cfg)
	if a != b {
		t.Errorf("identical inputs produced %+v and %+v", a, b)
	}
}
