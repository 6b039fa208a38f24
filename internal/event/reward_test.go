package event

import (
	"reflect"
	"testing"
)

func TestNormalizeRewardPriority(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		seed []RewardCategory
		want []RewardCategory
	}{
		{
			name: "alias dedup and fallback",
			in:   []string{"hints", "skill_points", "hints"},
			want: []RewardCategory{RewardHints, RewardSkillPts, RewardStats},
		},
		{
			name: "unknown entries dropped",
			in:   []string{"mood", "stats"},
			want: []RewardCategory{RewardStats, RewardSkillPts, RewardHints},
		},
		{
			name: "empty input yields default order",
			in:   nil,
			want: []RewardCategory{RewardSkillPts, RewardStats, RewardHints},
		},
		{
			name: "seed decides append order",
			in:   []string{"hints"},
			seed: []RewardCategory{RewardStats, RewardSkillPts, RewardHints},
			want: []RewardCategory{RewardHints, RewardStats, RewardSkillPts},
		},
		{
			name: "partial seed backstopped by default order",
			in:   nil,
			seed: []RewardCategory{RewardHints},
			want: []RewardCategory{RewardHints, RewardSkillPts, RewardStats},
		},
	}
	for _, c := range cases {
		got := NormalizeRewardPriority(c.in, c.seed)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
