package ui

import (
	"context"
	"testing"

	"github.com/mkyte/paddock/internal/catalog"
	"github.com/mkyte/paddock/internal/event"
	"github.com/mkyte/paddock/internal/setup"
	"github.com/mkyte/paddock/internal/util"
)

func TestNextThemeNameCycles(t *testing.T) {
	seen := map[string]bool{}
	name := "catppuccin"
	for i := 0; i < len(themeNames()); i++ {
		seen[name] = true
		name = nextThemeName(name, 1)
	}
	if name != "catppuccin" {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	if len(seen) != len(themeNames()) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themeNames()))
	}
	if nextThemeName("no-such-theme", 1) == "" {
		t.Fatal("unknown theme should still resolve to a real one")
	}
}

func TestOverrideFromEventsView(t *testing.T) {
	two := 2
	index := catalog.NewIndex([]event.RawSet{{
		Kind: event.KindScenario, Name: "URA Finale",
		Events: []event.ChoiceEvent{{
			Name:              "Exhilarating! What a Rush",
			Options:           map[string][]event.Outcome{"1": nil, "2": nil},
			DefaultPreference: &two,
		}},
	}})
	store := setup.NewStore()
	store.SetScenario(&setup.EntityRef{Name: "URA Finale"})

	m := initialModel(context.Background(), nil, store, index, nil, util.Config{Theme: "gruvbox"}, "test")
	m.openEvents(rowScenario)
	if m.view != viewEvents || len(m.eventsList) != 1 {
		t.Fatalf("events view not opened: view=%q events=%d", m.view, len(m.eventsList))
	}

	ev := m.eventsList[0]
	key, legacy := m.eventKeys(ev)
	prefs := store.Snapshot().Prefs
	if got := event.Resolve(prefs, key, legacy, ev.DefaultPreference, event.KindScenario); got != 2 {
		t.Fatalf("declared default should win before override: got %d", got)
	}

	m.setOverrideForCursor(1)
	prefs = store.Snapshot().Prefs
	if got := event.Resolve(prefs, key, legacy, ev.DefaultPreference, event.KindScenario); got != 1 {
		t.Fatalf("override not applied: got %d", got)
	}

	m.setOverrideForCursor(9)
	if _, ok := store.Snapshot().Prefs.Overrides[key]; !ok {
		t.Fatal("rejecting a missing option must not clear the stored override")
	}

	m.clearOverrideForCursor()
	if _, ok := store.Snapshot().Prefs.Overrides[key]; ok {
		t.Fatal("override not cleared")
	}
}
