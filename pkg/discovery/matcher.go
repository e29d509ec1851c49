package discovery

import (
	"launchbridge/pkg/enterprises"
	"launchbridge/pkg/startups"
)

// Weights control how much each matched preference dimension contributes
// to a startup's match weight.
type Weights struct {
	Industry int
	ARRRange int
}

func DefaultWeights() Weights {
	return Weights{Industry: 2, ARRRange: 1}
}

// DefaultThreshold is the minimum match weight that moves a startup into
// the recommended tier. With default weights an industry match alone
// qualifies; an ARR range match alone does not.
const DefaultThreshold = 2

// MatchResult explains why a startup matched an enterprise's preferences.
// Reasons are ordered by evaluation: industry before ARR range.
type MatchResult struct {
	Weight  int      `json:"weight"`
	Reasons []string `json:"reasons"`
}

type Matcher struct {
	weights   Weights
	threshold int
}

func NewMatcher(weights Weights, threshold int) *Matcher {
	return &Matcher{weights: weights, threshold: threshold}
}

func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultWeights(), DefaultThreshold)
}

func (m *Matcher) Match(profile enterprises.Profile, s startups.Startup) MatchResult {
	result := MatchResult{Reasons: []string{}}

	if contains(profile.InterestedIndustries, s.Industry) {
		result.Weight += m.weights.Industry
		result.Reasons = append(result.Reasons, "Industry match")
	}
	if contains(profile.PreferredARRRanges, s.ARRRange) {
		result.Weight += m.weights.ARRRange
		result.Reasons = append(result.Reasons, "ARR range match")
	}

	return result
}

// Recommended reports whether a match weight clears the recommendation
// threshold. Zero-weight matches never qualify, whatever the threshold.
func (m *Matcher) Recommended(result MatchResult) bool {
	return result.Weight > 0 && result.Weight >= m.threshold
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
