package goals

import "strings"

type Classification int

const (
	Unsupported Classification = iota
	Weight
)

func (c Classification) String() string {
	switch c {
	case Weight:
		return "weight"
	default:
		return "unsupported"
	}
}

const GoalTypeWeight = "weight"

type classificationRule struct {
	class Classification
	match func(g Goal) bool
}

// Rules are tried in order and the first match wins. The unit and title
// checks are free-text heuristics kept as-is; "Squat 1RM" in kg counts as a
// weight goal.
var classificationRules = []classificationRule{
	{
		class: Weight,
		match: func(g Goal) bool {
			return strings.Contains(strings.ToLower(g.Unit), "kg")
		},
	},
	{
		class: Weight,
		match: func(g Goal) bool {
			title := strings.ToLower(g.Title)
			return strings.Contains(title, "poids") || strings.Contains(title, "weight")
		},
	},
	{
		class: Weight,
		match: func(g Goal) bool {
			return g.GoalType == GoalTypeWeight
		},
	},
}

func Classify(g Goal) Classification {
	for _, rule := range classificationRules {
		if rule.match(g) {
			return rule.class
		}
	}
	return Unsupported
}

func (g Goal) IsWeight() bool {
	return Classify(g) == Weight
}
