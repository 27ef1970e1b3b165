// Package checklist computes completion progress and persists checked state
// through the store.KV interface.
package checklist

import (
	"math"

	"pretrade/internal/model"
)

// Tier is the visual state of a card's progress bar, derived from required
// completion. The three tiers are mutually exclusive.
type Tier int

const (
	TierDanger Tier = iota
	TierWarning
	TierSuccess
)

func (t Tier) String() string {
	switch t {
	case TierSuccess:
		return "success"
	case TierWarning:
		return "warning"
	default:
		return "danger"
	}
}

// Stats holds the item counts a card's progress derives from. Always
// recomputed from the current items, never stored.
type Stats struct {
	Total           int
	Checked         int
	Required        int
	RequiredChecked int
}

// Compute counts checked and required items on a checklist.
func Compute(c model.Checklist) Stats {
	var s Stats
	for _, it := range c.Items {
		s.Total++
		if it.Checked {
			s.Checked++
		}
		if it.Required {
			s.Required++
			if it.Checked {
				s.RequiredChecked++
			}
		}
	}
	return s
}

// Percent is the overall completion, rounded. An empty checklist reports 0.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Checked) / float64(s.Total) * 100))
}

// RequiredPercent is completion over required items only; 100 when the
// checklist has no required items (vacuously satisfied).
func (s Stats) RequiredPercent() int {
	if s.Required == 0 {
		return 100
	}
	return int(math.Round(float64(s.RequiredChecked) / float64(s.Required) * 100))
}

// Tier maps required completion onto the three-way color tier: success when
// every required item is checked, warning from half upward, danger below.
// Thresholds compare counts, not the rounded percentage, so 99.5% is still
// warning and 49.5% is still danger.
func (s Stats) Tier() Tier {
	switch {
	case s.RequiredChecked == s.Required:
		return TierSuccess
	case 2*s.RequiredChecked >= s.Required:
		return TierWarning
	default:
		return TierDanger
	}
}
