package event

// DefaultRewardOrder is the hardcoded reward priority used when nothing
// better is known.
func DefaultRewardOrder() []RewardCategory {
	return ListRewardCategories()
}

// NormalizeRewardPriority repairs a reward priority list: legacy aliases map
// onto the canonical set, entries outside the set drop, duplicates keep their
// first occurrence, and canonical categories still missing afterwards are
// appended in seed order. A nil seed means the default order.
func NormalizeRewardPriority(values []string, seed []RewardCategory) []RewardCategory {
	if seed == nil {
		seed = DefaultRewardOrder()
	}
	out := make([]RewardCategory, 0, len(AllRewardCategories))
	seen := map[RewardCategory]bool{}
	add := func(c RewardCategory) {
		if c.Validate() && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, v := range values {
		c := RewardCategory(v)
		if alias, ok := rewardAliases[v]; ok {
			c = alias
		}
		add(c)
	}
	for _, c := range seed {
		add(c)
	}
	// seed may itself be partial; the default order backstops it
	for _, c := range AllRewardCategories {
		add(c)
	}
	return out
}
