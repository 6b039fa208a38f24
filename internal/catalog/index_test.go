package catalog

import (
	"reflect"
	"testing"

	"github.com/mkyte/paddock/internal/event"
)

func support(name string, attr event.Attribute, rarity event.Rarity) event.RawSet {
	return event.RawSet{Kind: event.KindSupport, Name: name, Attribute: attr, Rarity: rarity}
}

func trainee(name string, events ...event.ChoiceEvent) event.RawSet {
	return event.RawSet{Kind: event.KindTrainee, Name: name, Events: events}
}

func choice(name string, step, options int) event.ChoiceEvent {
	opts := map[string][]event.Outcome{}
	for i := 1; i <= options; i++ {
		opts[string(rune('0'+i))] = []event.Outcome{{Type: "stats", Value: 5}}
	}
	return event.ChoiceEvent{Type: "random", Name: name, ChainStep: step, Options: opts}
}

func TestIndexSupportsSortedByRankThenName(t *testing.T) {
	idx := NewIndex([]event.RawSet{
		support("Zenno Rob Roy", event.AttrSpeed, event.RarityR),
		support("Biko Pegasus", event.AttrSpeed, event.RaritySR),
		support("Kitasan Black", event.AttrSpeed, event.RaritySSR),
		support("Daiwa Scarlet", event.AttrSpeed, event.RaritySSR),
		support("Nice Nature", event.AttrStamina, event.RarityR),
	})
	got := idx.SupportsByAttribute(event.AttrSpeed)
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name
	}
	want := []string{"Daiwa Scarlet", "Kitasan Black", "Biko Pegasus", "Zenno Rob Roy"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("speed supports order = %v, want %v", names, want)
	}
	if len(idx.SupportsByAttribute(event.AttrStamina)) != 1 {
		t.Fatalf("stamina bucket wrong")
	}
	if attrs := idx.Attributes(); !reflect.DeepEqual(attrs, []event.Attribute{event.AttrSpeed, event.AttrStamina}) {
		t.Fatalf("attributes = %v", attrs)
	}
}

func TestIndexDropsUnknownKind(t *testing.T) {
	idx := NewIndex([]event.RawSet{
		{Kind: "banner", Name: "Bogus"},
		support("Kitasan Black", event.AttrSpeed, event.RaritySSR),
	})
	if n := len(idx.SupportsByAttribute(event.AttrSpeed)); n != 1 {
		t.Fatalf("expected the valid support to survive, got %d", n)
	}
	if len(idx.Scenarios()) != 0 || len(idx.TraineeNames()) != 0 {
		t.Fatalf("unknown kind leaked into the index")
	}
}

func TestIndexTraineeSplitAndMerge(t *testing.T) {
	idx := NewIndex([]event.RawSet{
		trainee("General", choice("Intro", 1, 1), choice("Summer Camp", 1, 2)),
		trainee("Special Week", choice("Intro", 1, 2)),
	})
	if names := idx.TraineeNames(); !reflect.DeepEqual(names, []string{"Special Week"}) {
		t.Fatalf("trainee names = %v", names)
	}
	if n := len(idx.GeneralTraineeEvents()); n != 2 {
		t.Fatalf("general pool size = %d", n)
	}
	merged := idx.TraineeEvents("Special Week")
	if len(merged) != 2 {
		t.Fatalf("merged event count = %d", len(merged))
	}
	if merged[0].Name != "Intro" || len(merged[0].Options) != 2 {
		t.Fatalf("specific Intro should shadow the general one: %+v", merged[0])
	}
	if got := idx.TraineeEvents("Unknown"); len(got) != 2 {
		t.Fatalf("unknown trainee should see the general pool, got %d", len(got))
	}
}

func TestFindSupportNeedsFullIdentity(t *testing.T) {
	idx := NewIndex([]event.RawSet{
		support("Kitasan Black", event.AttrSpeed, event.RaritySSR),
		support("Kitasan Black", event.AttrSpeed, event.RaritySR),
	})
	if _, ok := idx.FindSupport("Kitasan Black", event.AttrSpeed, event.RaritySR); !ok {
		t.Fatalf("SR variant should be findable")
	}
	if _, ok := idx.FindSupport("Kitasan Black", event.AttrStamina, event.RaritySSR); ok {
		t.Fatalf("wrong attribute should not match")
	}
}
