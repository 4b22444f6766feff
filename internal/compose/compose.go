// Package compose sizes the three session slots to a requested total
// duration. Allocation interpolates between each slot's configured
// min/max, then rounds so the three minutes always sum exactly to the
// requested total.
package compose

import "math"

// FocusMode selects the slot minute ranges.
type FocusMode string

const (
	FocusBalanced       FocusMode = "balanced"
	FocusDSAHeavy       FocusMode = "dsa-heavy"
	FocusInterviewHeavy FocusMode = "interview-heavy"
)

// Range is a slot's allowed minutes.
type Range struct {
	Min int
	Max int
}

// SlotRanges holds the per-slot ranges for one focus mode.
type SlotRanges struct {
	Review  Range
	Core    Range
	Breadth Range
}

// Config holds the composer settings.
type Config struct {
	// AllowedDurations is the enumerated set of valid totals. Any other
	// requested total silently falls back to DefaultDuration.
	AllowedDurations []int
	DefaultDuration  int
	Ranges           map[FocusMode]SlotRanges
}

// DefaultConfig returns the standard durations and slot ranges.
func DefaultConfig() Config {
	return Config{
		AllowedDurations: []int{30, 45, 90},
		DefaultDuration:  45,
		Ranges: map[FocusMode]SlotRanges{
			FocusBalanced: {
				Review:  Range{Min: 5, Max: 10},
				Core:    Range{Min: 15, Max: 50},
				Breadth: Range{Min: 5, Max: 30},
			},
			FocusDSAHeavy: {
				Review:  Range{Min: 5, Max: 10},
				Core:    Range{Min: 20, Max: 60},
				Breadth: Range{Min: 5, Max: 20},
			},
			FocusInterviewHeavy: {
				Review:  Range{Min: 5, Max: 10},
				Core:    Range{Min: 15, Max: 55},
				Breadth: Range{Min: 5, Max: 25},
			},
		},
	}
}

// Budget is the composed per-slot minute allocation.
type Budget struct {
	TotalMinutes   int
	FocusMode      FocusMode
	ReviewMinutes  int
	CoreMinutes    int
	BreadthMinutes int
}

// Compose sizes the slots. Unknown focus modes use the balanced ranges;
// totals outside the allowed set fall back to the default duration.
func Compose(totalMinutes int, mode FocusMode, cfg Config) Budget {
	total := cfg.DefaultDuration
	for _, d := range cfg.AllowedDurations {
		if d == totalMinutes {
			total = totalMinutes
			break
		}
	}

	ranges, ok := cfg.Ranges[mode]
	if !ok {
		mode = FocusBalanced
		ranges = cfg.Ranges[FocusBalanced]
	}

	review, core, breadth := allocate(total, ranges)
	return Budget{
		TotalMinutes:   total,
		FocusMode:      mode,
		ReviewMinutes:  review,
		CoreMinutes:    core,
		BreadthMinutes: breadth,
	}
}

func allocate(total int, r SlotRanges) (review, core, breadth int) {
	sumMin := r.Review.Min + r.Core.Min + r.Breadth.Min
	sumMax := r.Review.Max + r.Core.Max + r.Breadth.Max

	// Interpolate each slot between its min and max, then rescale so
	// the float allocations sum exactly to total.
	scale := 0.0
	if sumMax > sumMin {
		scale = float64(total-sumMin) / float64(sumMax-sumMin)
	}
	scale = clamp01(scale)

	fr := lerp(r.Review, scale)
	fc := lerp(r.Core, scale)
	fb := lerp(r.Breadth, scale)

	if sum := fr + fc + fb; sum > 0 {
		factor := float64(total) / sum
		fr *= factor
		fc *= factor
		fb *= factor
	}

	// Round review and core; breadth takes the remainder so the total
	// is conserved exactly.
	review = int(math.Round(fr))
	core = int(math.Round(fc))
	breadth = total - review - core

	// Pull breadth back into its range by shifting minutes, core first
	// then review, without pushing either below its own minimum.
	if breadth < r.Breadth.Min {
		need := r.Breadth.Min - breadth
		need -= shift(&core, r.Core.Min, need)
		need -= shift(&review, r.Review.Min, need)
		breadth = total - review - core
	} else if breadth > r.Breadth.Max {
		excess := breadth - r.Breadth.Max
		core += excess
		breadth = r.Breadth.Max
	}

	if breadth < 0 {
		core += breadth
		breadth = 0
	}
	return review, core, breadth
}

// shift reduces *slot by up to want, stopping at min. Returns how much
// was actually taken.
func shift(slot *int, min, want int) int {
	if want <= 0 {
		return 0
	}
	available := *slot - min
	if available <= 0 {
		return 0
	}
	take := want
	if take > available {
		take = available
	}
	*slot -= take
	return take
}

func lerp(r Range, scale float64) float64 {
	return float64(r.Min) + scale*float64(r.Max-r.Min)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
