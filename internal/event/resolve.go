package event

import "strings"

// Prefs is the preference-override bundle carried by an event setup.
type Prefs struct {
	// Overrides maps a full event key to the forced option number.
	Overrides map[string]int `json:"overrides"`
	// Patterns are wildcard rules; order matters, first match wins.
	Patterns []Pattern `json:"patterns"`
	// Defaults hold the per-kind fallback option number.
	Defaults Defaults `json:"defaults"`
	// RewardPriority breaks ties between otherwise equivalent options.
	RewardPriority []RewardCategory `json:"reward_priority"`
}

// Pattern is one wildcard rule mapping a key-space subset to an option.
type Pattern struct {
	Pattern string `json:"pattern"`
	Pick    int    `json:"pick"`
}

// Defaults hold per-kind fallback picks. Zero means "not set".
type Defaults struct {
	Support  int `json:"support"`
	Scenario int `json:"scenario"`
	Trainee  int `json:"trainee"`
}

// ForKind returns the stored fallback for a kind, zero when absent.
func (d Defaults) ForKind(k Kind) int {
	switch k {
	case KindSupport:
		return d.Support
	case KindScenario:
		return d.Scenario
	case KindTrainee:
		return d.Trainee
	}
	return 0
}

// DefaultPrefs returns the canonical empty preference bundle.
func DefaultPrefs() Prefs {
	return Prefs{
		Overrides:      map[string]int{},
		Patterns:       []Pattern{},
		Defaults:       Defaults{Support: 1, Scenario: 1, Trainee: 1},
		RewardPriority: ListRewardCategories(),
	}
}

// Clone returns a value-isolated copy of the bundle.
func (p Prefs) Clone() Prefs {
	out := p
	out.Overrides = make(map[string]int, len(p.Overrides))
	for k, v := range p.Overrides {
		out.Overrides[k] = v
	}
	out.Patterns = append([]Pattern{}, p.Patterns...)
	out.RewardPriority = append([]RewardCategory{}, p.RewardPriority...)
	return out
}

// Resolve determines the option number to apply for one event occurrence.
// Precedence, first match wins:
//
//  1. exact override for the step-aware key
//  2. exact override for the legacy key, when one was supplied
//  3. first pattern matching either key
//  4. the event's own declared default
//  5. the per-kind default, hardcoded 1 when even that is unset
//
// A concrete integer always returns; there is no "undecided" state.
func Resolve(p Prefs, key, legacyKey string, declared *int, kind Kind) int {
	if pick, ok := p.Overrides[key]; ok {
		return pick
	}
	if legacyKey != "" {
		if pick, ok := p.Overrides[legacyKey]; ok {
			return pick
		}
	}
	for _, pat := range p.Patterns {
		if MatchPattern(pat.Pattern, key) {
			return pat.Pick
		}
		if legacyKey != "" && MatchPattern(pat.Pattern, legacyKey) {
			return pat.Pick
		}
	}
	if declared != nil {
		return *declared
	}
	if d := p.Defaults.ForKind(kind); d >= 1 {
		return d
	}
	return 1
}

// MatchPattern implements asterisk-only glob matching: a pattern without '*'
// requires exact equality; otherwise the literal segments between asterisks
// must appear in the text in order, non-overlapping. No '?', no character
// classes, no escaping.
func MatchPattern(pattern, text string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == text
	}
	pos := 0
	for _, seg := range strings.Split(pattern, "*") {
		if seg == "" {
			continue
		}
		idx := strings.Index(text[pos:], seg)
		if idx < 0 {
			return false
		}
		pos += idx + len(seg)
	}
	return true
}
