package event

// String backed enums for JSON/DB interoperability.

type Kind string
type Rarity string
type Attribute string
type RewardCategory string

const (
	KindSupport  Kind = "support"
	KindScenario Kind = "scenario"
	KindTrainee  Kind = "trainee"
)

var AllKinds = []Kind{KindSupport, KindScenario, KindTrainee}

const (
	RaritySSR Rarity = "SSR"
	RaritySR  Rarity = "SR"
	RarityR   Rarity = "R"
	// RarityNone fills the key segment for kinds that carry no rarity.
	RarityNone Rarity = "None"
)

var AllRarities = []Rarity{RaritySSR, RaritySR, RarityR}

const (
	AttrSpeed   Attribute = "SPD"
	AttrStamina Attribute = "STA"
	AttrPower   Attribute = "PWR"
	AttrGuts    Attribute = "GUTS"
	AttrWit     Attribute = "WIT"
	AttrPal     Attribute = "PAL"
	AttrNone    Attribute = "None"
)

var AllAttributes = []Attribute{AttrSpeed, AttrStamina, AttrPower, AttrGuts, AttrWit, AttrPal}

const (
	RewardSkillPts RewardCategory = "skill_pts"
	RewardStats    RewardCategory = "stats"
	RewardHints    RewardCategory = "hints"
)

// rewardAliases maps legacy persisted spellings onto the canonical set.
var rewardAliases = map[string]RewardCategory{
	"skill_points": RewardSkillPts,
}

var AllRewardCategories = []RewardCategory{RewardSkillPts, RewardStats, RewardHints}

// RarityRank orders rarities for display: SSR first, unknown values last.
func RarityRank(r Rarity) int {
	switch r {
	case RaritySSR:
		return 0
	case RaritySR:
		return 1
	case RarityR:
		return 2
	default:
		return 9
	}
}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (k Kind) Validate() bool           { return contains(AllKinds, k) }
func (r Rarity) Validate() bool         { return contains(AllRarities, r) }
func (a Attribute) Validate() bool      { return contains(AllAttributes, a) }
func (c RewardCategory) Validate() bool { return contains(AllRewardCategories, c) }

// List helpers
func ListKinds() []Kind                     { return append([]Kind{}, AllKinds...) }
func ListRarities() []Rarity                { return append([]Rarity{}, AllRarities...) }
func ListAttributes() []Attribute           { return append([]Attribute{}, AllAttributes...) }
func ListRewardCategories() []RewardCategory {
	return append([]RewardCategory{}, AllRewardCategories...)
}
