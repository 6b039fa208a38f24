package event

import (
	"fmt"
	"strings"
)

// BuildKey returns the canonical step-aware key identifying one occurrence of
// one option-bearing event for one selectable entity:
//
//	<kind>/<entityName>/<attribute>/<rarity>/<eventName>#s<chainStep>
//
// Non-support kinds always carry the literal "None" attribute and rarity
// segments. A chainStep below 1 is clamped to 1.
func BuildKey(kind Kind, name string, attr Attribute, rarity Rarity, eventName string, chainStep int) string {
	if chainStep < 1 {
		chainStep = 1
	}
	a, r := keySegments(kind, attr, rarity)
	return fmt.Sprintf("%s/%s/%s/%s/%s#s%d", kind, name, a, r, eventName, chainStep)
}

// LegacyKey is the historical key form without the chain-step suffix. It is
// only consulted during resolution for setups written before steps existed;
// new writes always use BuildKey.
func LegacyKey(kind Kind, name string, attr Attribute, rarity Rarity, eventName string) string {
	a, r := keySegments(kind, attr, rarity)
	return fmt.Sprintf("%s/%s/%s/%s/%s", kind, name, a, r, eventName)
}

func keySegments(kind Kind, attr Attribute, rarity Rarity) (string, string) {
	if kind != KindSupport {
		return string(AttrNone), string(RarityNone)
	}
	a := string(attr)
	if a == "" {
		a = string(AttrNone)
	}
	r := string(rarity)
	if r == "" {
		r = string(RarityNone)
	}
	return a, r
}

// asciiPunct maps decorative Unicode punctuation that upstream data sprinkles
// into event names onto plain ASCII.
var asciiPunct = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"★", "*",
	"☆", "*",
	"　", " ",
	"…", "...",
	"♪", "",
	"♫", "",
)

// NormalizeName folds an event name for identity comparison: trims,
// lowercases, collapses whitespace runs and strips decorative punctuation.
// It is deliberately NOT applied inside BuildKey; stored keys keep the
// name exactly as the catalog spelled it.
func NormalizeName(name string) string {
	s := asciiPunct.Replace(name)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
