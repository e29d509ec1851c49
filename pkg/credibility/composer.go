package credibility

import "time"

// Breakdown holds the four category scores that make up a credibility score.
type Breakdown struct {
	LaunchEngagement    CategoryScore `json:"launch_engagement"`
	PeerReviews         CategoryScore `json:"peer_reviews"`
	EnterpriseFeedback  CategoryScore `json:"enterprise_feedback"`
	ProfileCompleteness CategoryScore `json:"profile_completeness"`
}

// Score is the persisted outcome of one credibility recomputation.
type Score struct {
	StartupID    int64     `json:"startup_id"`
	OverallScore int       `json:"overall_score"`
	Breakdown    Breakdown `json:"breakdown"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Compose turns a signal set into a full score. It is pure: the same
// signals always produce the same score, so repeated recomputes without
// new signal writes are idempotent.
func Compose(startupID int64, signals SignalSet, now time.Time) Score {
	breakdown := Breakdown{
		LaunchEngagement:    scoreLaunchEngagement(signals.Launches),
		PeerReviews:         scorePeerReviews(signals.Reviews),
		EnterpriseFeedback:  scoreEnterpriseFeedback(signals.Feedback),
		ProfileCompleteness: scoreProfileCompleteness(signals.Profile),
	}

	overall := breakdown.LaunchEngagement.Score +
		breakdown.PeerReviews.Score +
		breakdown.EnterpriseFeedback.Score +
		breakdown.ProfileCompleteness.Score

	return Score{
		StartupID:    startupID,
		OverallScore: overall,
		Breakdown:    breakdown,
		LastUpdated:  now,
	}
}
