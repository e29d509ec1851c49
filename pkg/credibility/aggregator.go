package credibility

import "math"

// Each category contributes at most CategoryMax points; the four caps sum
// to the 100-point overall scale.
const CategoryMax = 25

// CategoryScore is one normalized entry of the credibility breakdown.
// Score never exceeds Max.
type CategoryScore struct {
	Score   int            `json:"score"`
	Max     int            `json:"max"`
	Details map[string]any `json:"details"`
}

func clamp(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// roundHalfUp keeps recomputation deterministic: 0.5 always rounds up,
// unlike math.Round's handling of negative inputs or banker's rounding
// elsewhere.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func scoreLaunchEngagement(in LaunchSignals) CategoryScore {
	if in.Unavailable {
		return unavailableCategory()
	}

	score := in.LaunchCount*2 + in.TotalUpvotes/5
	return CategoryScore{
		Score: clamp(score, CategoryMax),
		Max:   CategoryMax,
		Details: map[string]any{
			"launch_count":  in.LaunchCount,
			"total_upvotes": in.TotalUpvotes,
		},
	}
}

func scorePeerReviews(in ReviewSignals) CategoryScore {
	if in.Unavailable {
		return unavailableCategory()
	}

	unverified := in.TotalReviews - in.VerifiedReviews
	score := in.VerifiedReviews*5 + int(math.Floor(float64(unverified)*1.5))
	return CategoryScore{
		Score: clamp(score, CategoryMax),
		Max:   CategoryMax,
		Details: map[string]any{
			"verified_reviews": in.VerifiedReviews,
			"total_reviews":    in.TotalReviews,
		},
	}
}

func scoreEnterpriseFeedback(in FeedbackSignals) CategoryScore {
	if in.Unavailable {
		return unavailableCategory()
	}

	if len(in.Entries) == 0 {
		return CategoryScore{
			Score: 0,
			Max:   CategoryMax,
			Details: map[string]any{
				"feedback_count": 0,
			},
		}
	}

	sum := 0
	for _, e := range in.Entries {
		sum += e.Rating
	}
	avg := float64(sum) / float64(len(in.Entries))

	return CategoryScore{
		Score: clamp(roundHalfUp(avg/5*CategoryMax), CategoryMax),
		Max:   CategoryMax,
		Details: map[string]any{
			"avg_rating":     avg,
			"feedback_count": len(in.Entries),
		},
	}
}

func scoreProfileCompleteness(in ProfileSignals) CategoryScore {
	if in.Unavailable || in.RequiredCount == 0 {
		return unavailableCategory()
	}

	present := in.RequiredCount - len(in.Missing)
	missing := in.Missing
	if missing == nil {
		missing = []string{}
	}

	score := roundHalfUp(float64(CategoryMax) * float64(present) / float64(in.RequiredCount))
	return CategoryScore{
		Score: clamp(score, CategoryMax),
		Max:   CategoryMax,
		Details: map[string]any{
			"missing_fields": missing,
		},
	}
}

// unavailableCategory is the degraded form used when a signal source cannot
// be reached: zero points, flagged so consumers can render the gap.
func unavailableCategory() CategoryScore {
	return CategoryScore{
		Score: 0,
		Max:   CategoryMax,
		Details: map[string]any{
			"unavailable": true,
		},
	}
}
