package setup

import (
	"github.com/mkyte/paddock/internal/event"
)

// SupportSlots is the fixed deck size.
const SupportSlots = 6

// SupportPriority tunes how strongly a support's hint tiles are weighted.
// Scores live on a 0..10 scale; writes clamp, never reject.
type SupportPriority struct {
	Enabled        bool    `json:"enabled"`
	ScoreBlueGreen float64 `json:"score_blue_green"`
	ScoreOrangeMax float64 `json:"score_orange_max"`
}

// DefaultSupportPriority returns the priority applied to a freshly filled slot.
func DefaultSupportPriority() SupportPriority {
	return SupportPriority{Enabled: true, ScoreBlueGreen: 0.75, ScoreOrangeMax: 0.5}
}

// Clamped returns the priority with both scores forced into 0..10.
func (p SupportPriority) Clamped() SupportPriority {
	p.ScoreBlueGreen = clampScore(p.ScoreBlueGreen)
	p.ScoreOrangeMax = clampScore(p.ScoreOrangeMax)
	return p
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// SupportSlot is one occupied deck slot. A nil slot means "empty".
type SupportSlot struct {
	Name                string          `json:"name"`
	Rarity              event.Rarity    `json:"rarity"`
	Attribute           event.Attribute `json:"attribute"`
	Priority            SupportPriority `json:"priority"`
	AvoidEnergyOverflow bool            `json:"avoid_energy_overflow"`
}

// EntityPick is the chosen scenario or trainee. Nil means nothing chosen.
type EntityPick struct {
	Name                string `json:"name"`
	AvoidEnergyOverflow bool   `json:"avoid_energy_overflow"`
}

// Setup is the full persisted unit for one preset: the six deck slots, the
// scenario and trainee picks, and the preference bundle.
type Setup struct {
	Supports [SupportSlots]*SupportSlot `json:"supports"`
	Scenario *EntityPick                `json:"scenario"`
	Trainee  *EntityPick                `json:"trainee"`
	Prefs    event.Prefs                `json:"prefs"`
}

// DefaultSetup returns the canonical empty setup.
func DefaultSetup() Setup {
	return Setup{Prefs: event.DefaultPrefs()}
}

// Clone returns a value-isolated deep copy.
func (s Setup) Clone() Setup {
	out := s
	for i, slot := range s.Supports {
		if slot != nil {
			c := *slot
			out.Supports[i] = &c
		}
	}
	if s.Scenario != nil {
		c := *s.Scenario
		out.Scenario = &c
	}
	if s.Trainee != nil {
		c := *s.Trainee
		out.Trainee = &c
	}
	out.Prefs = s.Prefs.Clone()
	return out
}

// SupportRef names a card for SetSupport. Priority and AvoidEnergyOverflow
// are optional; when nil the slot's existing values stick (or defaults apply
// on a previously empty slot).
type SupportRef struct {
	Name                string
	Rarity              event.Rarity
	Attribute           event.Attribute
	Priority            *SupportPriority
	AvoidEnergyOverflow *bool
}

// EntityRef names a scenario or trainee for the whole-value setters.
type EntityRef struct {
	Name                string
	AvoidEnergyOverflow *bool
}
