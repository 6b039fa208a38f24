package event

// RawSet is one catalog entity: a support card, the scenario, or a trainee.
// Sourced externally and loaded once per session; treated as immutable.
type RawSet struct {
	Kind      Kind          `json:"kind" yaml:"kind"`
	Name      string        `json:"name" yaml:"name"`
	Rarity    Rarity        `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Attribute Attribute     `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Events    []ChoiceEvent `json:"events" yaml:"events"`
}

// ChoiceEvent is one decision point offered by an entity. Type is free-form
// upstream (random|chain|special) and nothing downstream enforces the set.
type ChoiceEvent struct {
	Type      string `json:"type" yaml:"type"`
	ChainStep int    `json:"chain_step,omitempty" yaml:"chain_step,omitempty"`
	Name      string `json:"name" yaml:"name"`
	// Options maps option-number-as-string to the ordered outcomes of picking
	// it. More than one outcome means the result is randomized among them.
	Options map[string][]Outcome `json:"options" yaml:"options"`
	// DefaultPreference is the option the event's own data suggests,
	// independent of any user override. Nil when the data has no opinion.
	DefaultPreference *int `json:"default_preference,omitempty" yaml:"default_preference,omitempty"`
}

// Outcome is a single effect record inside an option.
type Outcome struct {
	Type  string `json:"type" yaml:"type"`
	Value int    `json:"value,omitempty" yaml:"value,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Step returns the event's chain step, defaulting to 1 when the data
// omitted it.
func (e ChoiceEvent) Step() int {
	if e.ChainStep < 1 {
		return 1
	}
	return e.ChainStep
}

// Randomized reports whether any option of the event has more than one
// possible outcome.
func (e ChoiceEvent) Randomized() bool {
	for _, outs := range e.Options {
		if len(outs) > 1 {
			return true
		}
	}
	return false
}
