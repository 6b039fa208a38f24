package event

import "fmt"

// MergeTraineeEvents combines the general trainee event pool with one
// trainee's specific events. An event is identified by its normalized name
// plus chain step; a specific event fully shadows the general event with the
// same identity (no field-level merge of options). Specific events come
// first in their original order, then the unshadowed general ones.
func MergeTraineeEvents(general, specific []ChoiceEvent) []ChoiceEvent {
	out := make([]ChoiceEvent, 0, len(general)+len(specific))
	seen := make(map[string]bool, len(specific))
	for _, ev := range specific {
		seen[mergeIdentity(ev)] = true
		out = append(out, ev)
	}
	for _, ev := range general {
		if seen[mergeIdentity(ev)] {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func mergeIdentity(ev ChoiceEvent) string {
	return fmt.Sprintf("%s#s%d", NormalizeName(ev.Name), ev.Step())
}
