package event

import "testing"

func TestBuildKeyDeterminism(t *testing.T) {
	k1 := BuildKey(KindSupport, "Kitasan Black", AttrSpeed, RaritySSR, "A New Rival", 2)
	k2 := BuildKey(KindSupport, "Kitasan Black", AttrSpeed, RaritySSR, "A New Rival", 2)
	if k1 != k2 {
		t.Fatalf("BuildKey not stable: %q vs %q", k1, k2)
	}
	if k1 != "support/Kitasan Black/SPD/SSR/A New Rival#s2" {
		t.Fatalf("unexpected key form: %q", k1)
	}
	k3 := BuildKey(KindSupport, "Kitasan Black", AttrSpeed, RaritySSR, "A New Rival", 3)
	if k1 == k3 {
		t.Fatalf("BuildKey identical for different step")
	}
}

func TestBuildKeyNonSupportSegments(t *testing.T) {
	for _, kind := range []Kind{KindScenario, KindTrainee} {
		got := BuildKey(kind, "URA Finale", AttrSpeed, RaritySSR, "Opening Gate", 1)
		want := string(kind) + "/URA Finale/None/None/Opening Gate#s1"
		if got != want {
			t.Fatalf("%s key = %q, want %q", kind, got, want)
		}
	}
}

func TestBuildKeyMissingAttrRarity(t *testing.T) {
	got := BuildKey(KindSupport, "A", "", "", "Ev", 1)
	if got != "support/A/None/None/Ev#s1" {
		t.Fatalf("empty attr/rarity not filled with None: %q", got)
	}
}

func TestBuildKeyClampsChainStep(t *testing.T) {
	for _, step := range []int{0, -3} {
		got := BuildKey(KindTrainee, "T", AttrNone, RarityNone, "Intro", step)
		if got != "trainee/T/None/None/Intro#s1" {
			t.Fatalf("step %d produced %q", step, got)
		}
	}
}

func TestLegacyKeyHasNoStepSuffix(t *testing.T) {
	got := LegacyKey(KindSupport, "A", AttrWit, RarityR, "Ev")
	if got != "support/A/WIT/R/Ev" {
		t.Fatalf("legacy key = %q", got)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Shining  Start ", "shining start"},
		{"“Victory” – Act…2", `"victory" - act...2`},
		{"Dance♪Lesson", "dancelesson"},
		{"★Debut★", "*debut*"},
		{"Tea　Time", "tea time"},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
