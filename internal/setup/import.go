package setup

import (
	"bytes"
	"encoding/json"

	"github.com/mkyte/paddock/internal/event"
)

// Issue records one field that could not be taken from an imported fragment.
// Import never fails; issues only explain which parts kept their previous
// values.
type Issue struct {
	Field  string
	Reason string
}

// ImportJSON decodes a persisted or pasted setup fragment and applies it as
// a sparse patch. A JSON null (or empty payload) resets the whole state, the
// behavior used when switching to a preset with no saved setup.
func (s *Store) ImportJSON(raw []byte) []Issue {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return s.Import(nil)
	}
	var patch map[string]any
	if err := json.Unmarshal(trimmed, &patch); err != nil {
		return []Issue{{Field: "setup", Reason: "not a JSON object: " + err.Error()}}
	}
	return s.Import(patch)
}

// Import applies a sparse patch: each top-level field present in the patch is
// rebuilt from the supplied data, fields absent from the patch keep their
// current values. A nil patch resets to the canonical empty setup. Malformed
// pieces degrade to the prior in-memory value, field by field; no input
// shape makes Import panic or reject the whole fragment.
func (s *Store) Import(patch map[string]any) []Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch == nil {
		s.setup = DefaultSetup()
		s.rev++
		return nil
	}
	var issues []Issue
	if v, ok := patch["supports"]; ok {
		s.setup.Supports = repairSupports(v, s.setup.Supports, &issues)
	}
	if v, ok := patch["scenario"]; ok {
		s.setup.Scenario = repairPick(v, s.setup.Scenario, "scenario", &issues)
	}
	if v, ok := patch["trainee"]; ok {
		s.setup.Trainee = repairPick(v, s.setup.Trainee, "trainee", &issues)
	}
	if v, ok := patch["prefs"]; ok {
		s.setup.Prefs = repairPrefs(v, s.setup.Prefs, &issues)
	}
	s.rev++
	return issues
}

// repairSupports always yields exactly SupportSlots entries. A null input
// entry explicitly empties its slot; a malformed entry (or an input shorter
// than the deck) leaves the current slot value in place.
func repairSupports(v any, cur [SupportSlots]*SupportSlot, issues *[]Issue) [SupportSlots]*SupportSlot {
	arr, ok := v.([]any)
	if !ok {
		*issues = append(*issues, Issue{Field: "supports", Reason: "not an array"})
		return cur
	}
	out := cur
	for i := 0; i < SupportSlots; i++ {
		if i >= len(arr) {
			continue
		}
		slot, ok := repairSupport(arr[i], cur[i])
		if !ok {
			*issues = append(*issues, Issue{Field: "supports", Reason: "invalid slot entry"})
			continue
		}
		out[i] = slot
	}
	return out
}

func repairSupport(v any, cur *SupportSlot) (*SupportSlot, bool) {
	if v == nil {
		return nil, true
	}
	m, ok := v.(map[string]any)
	if !ok {
		return cur, false
	}
	name, ok := asString(m["name"])
	if !ok || name == "" {
		return cur, false
	}
	rarity := event.Rarity(stringOr(m["rarity"]))
	if !rarity.Validate() {
		return cur, false
	}
	attr := event.Attribute(stringOr(m["attribute"]))
	if !attr.Validate() {
		return cur, false
	}
	slot := &SupportSlot{Name: name, Rarity: rarity, Attribute: attr}
	prevPriority := DefaultSupportPriority()
	prevAvoid := true
	if cur != nil {
		prevPriority = cur.Priority
		prevAvoid = cur.AvoidEnergyOverflow
	}
	slot.Priority = repairPriority(m["priority"], prevPriority)
	slot.AvoidEnergyOverflow = coerceBool(m["avoid_energy_overflow"], prevAvoid)
	return slot, true
}

func repairPriority(v any, prev SupportPriority) SupportPriority {
	m, ok := v.(map[string]any)
	if !ok {
		return prev.Clamped()
	}
	out := prev
	out.Enabled = coerceBool(m["enabled"], prev.Enabled)
	if f, ok := asFloat(m["score_blue_green"]); ok {
		out.ScoreBlueGreen = f
	}
	if f, ok := asFloat(m["score_orange_max"]); ok {
		out.ScoreOrangeMax = f
	}
	return out.Clamped()
}

// repairPick validates a scenario/trainee fragment. Null clears the pick;
// anything without a usable name keeps the current one.
func repairPick(v any, cur *EntityPick, field string, issues *[]Issue) *EntityPick {
	if v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		*issues = append(*issues, Issue{Field: field, Reason: "not an object"})
		return cur
	}
	name, ok := asString(m["name"])
	if !ok || name == "" {
		*issues = append(*issues, Issue{Field: field, Reason: "missing name"})
		return cur
	}
	avoid := true
	if cur != nil {
		avoid = cur.AvoidEnergyOverflow
	}
	return &EntityPick{Name: name, AvoidEnergyOverflow: coerceBool(m["avoid_energy_overflow"], avoid)}
}

// repairPrefs rebuilds the preference bundle from the fragment. The reward
// priority seeds its fallback order from the current value so a partial list
// does not reshuffle categories the input never mentioned.
func repairPrefs(v any, cur event.Prefs, issues *[]Issue) event.Prefs {
	m, ok := v.(map[string]any)
	if !ok {
		*issues = append(*issues, Issue{Field: "prefs", Reason: "not an object"})
		return cur
	}
	out := event.DefaultPrefs()
	out.Overrides = repairOverrides(m["overrides"])
	out.Patterns = repairPatterns(m["patterns"])
	out.Defaults = event.Defaults{
		Support:  intOr(child(m, "defaults", "support"), 1),
		Scenario: intOr(child(m, "defaults", "scenario"), 1),
		Trainee:  intOr(child(m, "defaults", "trainee"), 1),
	}
	out.RewardPriority = event.NormalizeRewardPriority(stringList(m["reward_priority"]), cur.RewardPriority)
	return out
}

func repairOverrides(v any) map[string]int {
	out := map[string]int{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, raw := range m {
		if pick, ok := asInt(raw); ok {
			out[k] = pick
		}
	}
	return out
}

// repairPatterns copies the list when it is an array, otherwise empties it.
func repairPatterns(v any) []event.Pattern {
	out := []event.Pattern{}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, raw := range arr {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		pattern, ok := asString(m["pattern"])
		if !ok || pattern == "" {
			continue
		}
		pick, ok := asInt(m["pick"])
		if !ok {
			continue
		}
		out = append(out, event.Pattern{Pattern: pattern, Pick: pick})
	}
	return out
}

// Loose-shape narrowing helpers. Imported fragments arrive as decoded JSON
// (float64 numbers) but may carry ints when built in-process.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringOr(v any) string {
	s, _ := asString(v)
	return s
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	return int(f), ok
}

func intOr(v any, fallback int) int {
	if n, ok := asInt(v); ok {
		return n
	}
	return fallback
}

// coerceBool keeps the fallback unless the input is strictly a boolean.
func coerceBool(v any, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}

func child(m map[string]any, key, sub string) any {
	c, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return c[sub]
}

func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, raw := range arr {
		if s, ok := asString(raw); ok {
			out = append(out, s)
		}
	}
	return out
}
