package catalog

import (
	"sort"

	"github.com/mkyte/paddock/internal/event"
)

// GeneralTraineeName is the catalog name of the trainee entry whose events
// apply to every trainee.
const GeneralTraineeName = "general"

// Index holds queryable views over the raw catalog: supports grouped by
// attribute then rarity, scenarios as a flat list, and trainees split into
// the shared general pool plus name-keyed specific sets. Building is
// best-effort; entities the index cannot place are dropped silently.
type Index struct {
	supports  map[event.Attribute]map[event.Rarity][]event.RawSet
	scenarios []event.RawSet
	general   []event.ChoiceEvent
	trainees  map[string]event.RawSet
}

// NewIndex builds the catalog index from a flat entity list.
func NewIndex(sets []event.RawSet) *Index {
	idx := &Index{
		supports: map[event.Attribute]map[event.Rarity][]event.RawSet{},
		trainees: map[string]event.RawSet{},
	}
	for _, set := range sets {
		if set.Name == "" && set.Kind != event.KindTrainee {
			continue
		}
		switch set.Kind {
		case event.KindSupport:
			byRarity := idx.supports[set.Attribute]
			if byRarity == nil {
				byRarity = map[event.Rarity][]event.RawSet{}
				idx.supports[set.Attribute] = byRarity
			}
			byRarity[set.Rarity] = append(byRarity[set.Rarity], set)
		case event.KindScenario:
			idx.scenarios = append(idx.scenarios, set)
		case event.KindTrainee:
			if isGeneralTrainee(set.Name) {
				idx.general = append(idx.general, set.Events...)
			} else {
				idx.trainees[set.Name] = set
			}
		}
	}
	for _, byRarity := range idx.supports {
		for rarity := range byRarity {
			sortSupports(byRarity[rarity])
		}
	}
	return idx
}

func isGeneralTrainee(name string) bool {
	n := event.NormalizeName(name)
	return n == "" || n == GeneralTraineeName
}

func sortSupports(sets []event.RawSet) {
	sort.SliceStable(sets, func(i, j int) bool {
		ri, rj := event.RarityRank(sets[i].Rarity), event.RarityRank(sets[j].Rarity)
		if ri != rj {
			return ri < rj
		}
		return sets[i].Name < sets[j].Name
	})
}

// Supports returns the cards of one attribute/rarity cell, sorted by name.
func (x *Index) Supports(attr event.Attribute, rarity event.Rarity) []event.RawSet {
	byRarity := x.supports[attr]
	if byRarity == nil {
		return nil
	}
	return append([]event.RawSet{}, byRarity[rarity]...)
}

// SupportsByAttribute flattens one attribute across rarities, SSR first and
// alphabetical within the same rank.
func (x *Index) SupportsByAttribute(attr event.Attribute) []event.RawSet {
	byRarity := x.supports[attr]
	if byRarity == nil {
		return nil
	}
	var out []event.RawSet
	for _, sets := range byRarity {
		out = append(out, sets...)
	}
	sortSupports(out)
	return out
}

// Attributes lists the attributes that have at least one support, in the
// canonical attribute order.
func (x *Index) Attributes() []event.Attribute {
	var out []event.Attribute
	for _, attr := range event.AllAttributes {
		if len(x.supports[attr]) > 0 {
			out = append(out, attr)
		}
	}
	return out
}

// FindSupport looks up one card by its full identity; name alone is not
// unique across rarity and attribute.
func (x *Index) FindSupport(name string, attr event.Attribute, rarity event.Rarity) (event.RawSet, bool) {
	for _, set := range x.Supports(attr, rarity) {
		if set.Name == name {
			return set, true
		}
	}
	return event.RawSet{}, false
}

// Scenarios returns the scenario entities in catalog order.
func (x *Index) Scenarios() []event.RawSet {
	return append([]event.RawSet{}, x.scenarios...)
}

// GeneralTraineeEvents returns the event pool shared by every trainee.
func (x *Index) GeneralTraineeEvents() []event.ChoiceEvent {
	return append([]event.ChoiceEvent{}, x.general...)
}

// TraineeNames lists the specific trainees, sorted.
func (x *Index) TraineeNames() []string {
	out := make([]string, 0, len(x.trainees))
	for name := range x.trainees {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// TraineeEvents returns the effective event list for one trainee: its
// specific events followed by the general events they do not shadow. An
// unknown trainee gets the general pool.
func (x *Index) TraineeEvents(name string) []event.ChoiceEvent {
	set, ok := x.trainees[name]
	if !ok {
		return x.GeneralTraineeEvents()
	}
	return event.MergeTraineeEvents(x.general, set.Events)
}
