package setup

import (
	"sync"

	"github.com/mkyte/paddock/internal/event"
)

// Store owns the single live Setup for the active preset. Every mutator
// applies its change as one full synchronous swap and advances the revision
// counter, so a watcher can compare revisions instead of diffing state.
type Store struct {
	mu    sync.Mutex
	setup Setup
	rev   uint64
}

// NewStore returns a store holding the canonical empty setup at revision 0.
func NewStore() *Store {
	return &Store{setup: DefaultSetup()}
}

// Revision returns the strictly monotonic mutation counter.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// Snapshot returns a deep copy of the current setup. Callers can never reach
// live state through the returned value.
func (s *Store) Snapshot() Setup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setup.Clone()
}

// SetSupport writes or clears one deck slot. Out-of-range slots clamp to the
// nearest valid index. Priority and avoid-overflow are sticky per slot: when
// the ref leaves them unspecified the slot's previous values survive the
// card swap.
func (s *Store) SetSupport(slot int, ref *SupportRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot = clampSlot(slot)
	if ref == nil {
		s.setup.Supports[slot] = nil
		s.rev++
		return
	}
	prev := s.setup.Supports[slot]
	next := &SupportSlot{
		Name:                ref.Name,
		Rarity:              ref.Rarity,
		Attribute:           ref.Attribute,
		Priority:            DefaultSupportPriority(),
		AvoidEnergyOverflow: true,
	}
	if prev != nil {
		next.Priority = prev.Priority
		next.AvoidEnergyOverflow = prev.AvoidEnergyOverflow
	}
	if ref.Priority != nil {
		next.Priority = *ref.Priority
	}
	if ref.AvoidEnergyOverflow != nil {
		next.AvoidEnergyOverflow = *ref.AvoidEnergyOverflow
	}
	next.Priority = next.Priority.Clamped()
	s.setup.Supports[slot] = next
	s.rev++
}

// SetScenario replaces the scenario pick wholesale. A nil ref clears it.
func (s *Store) SetScenario(ref *EntityRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup.Scenario = pickFromRef(ref, s.setup.Scenario)
	s.rev++
}

// SetTrainee replaces the trainee pick wholesale. A nil ref clears it.
func (s *Store) SetTrainee(ref *EntityRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup.Trainee = pickFromRef(ref, s.setup.Trainee)
	s.rev++
}

func pickFromRef(ref *EntityRef, prev *EntityPick) *EntityPick {
	if ref == nil {
		return nil
	}
	pick := &EntityPick{Name: ref.Name, AvoidEnergyOverflow: true}
	if prev != nil {
		pick.AvoidEnergyOverflow = prev.AvoidEnergyOverflow
	}
	if ref.AvoidEnergyOverflow != nil {
		pick.AvoidEnergyOverflow = *ref.AvoidEnergyOverflow
	}
	return pick
}

// PrefsPatch is a partial update for SetPrefs. Nil fields keep current values.
type PrefsPatch struct {
	Overrides      map[string]int
	Patterns       *[]event.Pattern
	Defaults       DefaultsPatch
	RewardPriority []string
}

// DefaultsPatch updates per-kind fallbacks field by field.
type DefaultsPatch struct {
	Support  *int
	Scenario *int
	Trainee  *int
}

// SetPrefs shallow-merges overrides, replaces patterns when supplied, merges
// defaults field-by-field and re-normalizes the reward priority.
func (s *Store) SetPrefs(patch PrefsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs := &s.setup.Prefs
	if prefs.Overrides == nil {
		prefs.Overrides = map[string]int{}
	}
	for k, v := range patch.Overrides {
		prefs.Overrides[k] = v
	}
	if patch.Patterns != nil {
		prefs.Patterns = append([]event.Pattern{}, (*patch.Patterns)...)
	}
	if patch.Defaults.Support != nil {
		prefs.Defaults.Support = *patch.Defaults.Support
	}
	if patch.Defaults.Scenario != nil {
		prefs.Defaults.Scenario = *patch.Defaults.Scenario
	}
	if patch.Defaults.Trainee != nil {
		prefs.Defaults.Trainee = *patch.Defaults.Trainee
	}
	values := patch.RewardPriority
	if values == nil {
		values = rewardStrings(prefs.RewardPriority)
	}
	prefs.RewardPriority = event.NormalizeRewardPriority(values, prefs.RewardPriority)
	s.rev++
}

// SetOverride upserts a single forced pick for one exact event key.
func (s *Store) SetOverride(key string, pick int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setup.Prefs.Overrides == nil {
		s.setup.Prefs.Overrides = map[string]int{}
	}
	s.setup.Prefs.Overrides[key] = pick
	s.rev++
}

// ClearOverride removes a forced pick, restoring pattern/default resolution
// for that key.
func (s *Store) ClearOverride(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.setup.Prefs.Overrides, key)
	s.rev++
}

// SetSupportPriority normalizes and replaces one slot's priority. Writing to
// an empty slot changes nothing and leaves the revision alone.
func (s *Store) SetSupportPriority(slot int, p SupportPriority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot = clampSlot(slot)
	cur := s.setup.Supports[slot]
	if cur == nil {
		return
	}
	cur.Priority = p.Clamped()
	s.rev++
}

// SetRewardPriority normalizes and replaces the reward priority list.
func (s *Store) SetRewardPriority(values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup.Prefs.RewardPriority = event.NormalizeRewardPriority(values, nil)
	s.rev++
}

// Reset restores the canonical empty setup.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup = DefaultSetup()
	s.rev++
}

func clampSlot(slot int) int {
	if slot < 0 {
		return 0
	}
	if slot >= SupportSlots {
		return SupportSlots - 1
	}
	return slot
}

func rewardStrings(in []event.RewardCategory) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = string(c)
	}
	return out
}
