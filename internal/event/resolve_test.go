package event

import "testing"

func intp(v int) *int { return &v }

func TestResolveExactOverrideWins(t *testing.T) {
	p := DefaultPrefs()
	p.Overrides["support/A/SPD/SSR/Ev#s1"] = 2
	got := Resolve(p, "support/A/SPD/SSR/Ev#s1", "", intp(3), KindSupport)
	if got != 2 {
		t.Fatalf("exact override should win, got %d", got)
	}
}

func TestResolveLegacyKeyFallback(t *testing.T) {
	p := DefaultPrefs()
	p.Overrides["support/A/SPD/SSR/Ev"] = 5
	got := Resolve(p, "support/A/SPD/SSR/Ev#s1", "support/A/SPD/SSR/Ev", nil, KindSupport)
	if got != 5 {
		t.Fatalf("legacy override should apply, got %d", got)
	}
}

func TestResolvePatternFallback(t *testing.T) {
	p := DefaultPrefs()
	p.Patterns = []Pattern{{Pattern: "support/A/*/Ev", Pick: 4}}
	got := Resolve(p, "support/A/SPD/SSR/Ev#s1", "", nil, KindSupport)
	if got != 4 {
		t.Fatalf("pattern should apply, got %d", got)
	}
}

func TestResolvePatternOrderFirstWins(t *testing.T) {
	p := DefaultPrefs()
	p.Patterns = []Pattern{
		{Pattern: "support/*", Pick: 3},
		{Pattern: "support/A/*", Pick: 4},
	}
	got := Resolve(p, "support/A/SPD/SSR/Ev#s1", "", nil, KindSupport)
	if got != 3 {
		t.Fatalf("first listed pattern should win, got %d", got)
	}
}

func TestResolveDeclaredDefaultBeatsKindDefault(t *testing.T) {
	p := DefaultPrefs()
	p.Defaults.Support = 2
	got := Resolve(p, "support/A/SPD/SSR/Ev#s1", "", intp(3), KindSupport)
	if got != 3 {
		t.Fatalf("declared default should beat kind default, got %d", got)
	}
}

func TestResolveKindDefaultFloor(t *testing.T) {
	p := Prefs{Overrides: map[string]int{}}
	got := Resolve(p, "trainee/T/None/None/Intro#s1", "", nil, KindTrainee)
	if got != 1 {
		t.Fatalf("absent kind default must floor to 1, got %d", got)
	}
	p.Defaults.Trainee = 2
	if got := Resolve(p, "trainee/T/None/None/Intro#s1", "", nil, KindTrainee); got != 2 {
		t.Fatalf("kind default should apply, got %d", got)
	}
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern, text string
		want          bool
	}{
		{"support/A/SPD/SSR/Ev", "support/A/SPD/SSR/Ev", true},
		{"support/A/SPD/SSR/Ev", "support/A/SPD/SSR/Ev#s1", false},
		{"*", "anything", true},
		{"support/*", "support/A/SPD/SSR/Ev#s1", true},
		{"*#s2", "support/A/SPD/SSR/Ev#s2", true},
		{"support/*/Ev#s1", "support/A/SPD/SSR/Ev#s1", true},
		{"*/SSR/*", "support/A/SPD/SSR/Ev#s1", true},
		{"*Ev*Ev*", "support/A/SPD/SSR/Ev#s1", false}, // segments must not overlap
		{"*SPD*SSR*", "support/A/SSR/SPD/Ev#s1", false},
	}
	for _, c := range cases {
		if got := MatchPattern(c.pattern, c.text); got != c.want {
			t.Fatalf("MatchPattern(%q, %q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}
