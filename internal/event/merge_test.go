package event

import "testing"

func ev(name string, step int, options int) ChoiceEvent {
	opts := make(map[string][]Outcome, options)
	for i := 1; i <= options; i++ {
		opts[itoa(i)] = []Outcome{{Type: "stats", Value: 10}}
	}
	return ChoiceEvent{Type: "random", Name: name, ChainStep: step, Options: opts}
}

func itoa(i int) string { return string(rune('0' + i)) }

func TestMergeSpecificShadowsGeneral(t *testing.T) {
	general := []ChoiceEvent{ev("Intro", 1, 1), ev("Summer Camp", 1, 2)}
	specific := []ChoiceEvent{ev("Intro", 1, 2)}
	merged := MergeTraineeEvents(general, specific)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged events, got %d", len(merged))
	}
	if merged[0].Name != "Intro" || len(merged[0].Options) != 2 {
		t.Fatalf("specific Intro should win: %+v", merged[0])
	}
	if merged[1].Name != "Summer Camp" {
		t.Fatalf("general event lost: %+v", merged[1])
	}
}

func TestMergeStepsAreDistinct(t *testing.T) {
	general := []ChoiceEvent{ev("Chain", 1, 1), ev("Chain", 2, 1)}
	specific := []ChoiceEvent{ev("Chain", 2, 3)}
	merged := MergeTraineeEvents(general, specific)
	if len(merged) != 2 {
		t.Fatalf("expected 2 events, got %d", len(merged))
	}
	if merged[0].Step() != 2 || len(merged[0].Options) != 3 {
		t.Fatalf("specific step-2 should lead: %+v", merged[0])
	}
	if merged[1].Step() != 1 {
		t.Fatalf("general step-1 should survive: %+v", merged[1])
	}
}

func TestMergeUsesNormalizedNames(t *testing.T) {
	general := []ChoiceEvent{ev("Shining  Start", 1, 1)}
	specific := []ChoiceEvent{ev("shining start", 1, 2)}
	merged := MergeTraineeEvents(general, specific)
	if len(merged) != 1 {
		t.Fatalf("cosmetic name difference should still dedupe, got %d events", len(merged))
	}
	if len(merged[0].Options) != 2 {
		t.Fatalf("specific variant should win: %+v", merged[0])
	}
}

func TestMergeZeroStepDefaultsToOne(t *testing.T) {
	general := []ChoiceEvent{ev("Intro", 0, 1)}
	specific := []ChoiceEvent{ev("Intro", 1, 2)}
	if merged := MergeTraineeEvents(general, specific); len(merged) != 1 {
		t.Fatalf("step 0 must collide with step 1, got %d events", len(merged))
	}
}
