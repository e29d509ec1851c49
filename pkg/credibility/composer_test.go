package credibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompose_FullScenario(t *testing.T) {
	// Startup with 3 launches totalling 40 upvotes, 5 reviews of which 4
	// verified, two feedback entries rated 4 and 5, and a profile missing
	// only a long-enough description.
	signals := SignalSet{
		Launches: LaunchSignals{LaunchCount: 3, TotalUpvotes: 40},
		Reviews:  ReviewSignals{TotalReviews: 5, VerifiedReviews: 4},
		Feedback: FeedbackSignals{Entries: []FeedbackEntry{{Rating: 4}, {Rating: 5}}},
		Profile:  ProfileSignals{Missing: []string{"description"}, RequiredCount: 4},
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	score := Compose(42, signals, now)

	require.Equal(t, int64(42), score.StartupID)
	require.Equal(t, 14, score.Breakdown.LaunchEngagement.Score)
	require.Equal(t, 21, score.Breakdown.PeerReviews.Score)
	require.Equal(t, 23, score.Breakdown.EnterpriseFeedback.Score)
	require.Equal(t, 19, score.Breakdown.ProfileCompleteness.Score)
	require.Equal(t, 77, score.OverallScore)
	require.Equal(t, now, score.LastUpdated)
}

func TestCompose_Deterministic(t *testing.T) {
	signals := SignalSet{
		Launches: LaunchSignals{LaunchCount: 5, TotalUpvotes: 17},
		Reviews:  ReviewSignals{TotalReviews: 3, VerifiedReviews: 1},
		Feedback: FeedbackSignals{Entries: []FeedbackEntry{{Rating: 3}}},
		Profile:  ProfileSignals{RequiredCount: 4},
	}

	now := time.Now().UTC()
	first := Compose(7, signals, now)
	second := Compose(7, signals, now)

	require.Equal(t, first, second)
}

func TestCompose_BoundsHold(t *testing.T) {
	extreme := SignalSet{
		Launches: LaunchSignals{LaunchCount: 1000, TotalUpvotes: 100000},
		Reviews:  ReviewSignals{TotalReviews: 1000, VerifiedReviews: 1000},
		Feedback: FeedbackSignals{Entries: []FeedbackEntry{{Rating: 5}, {Rating: 5}, {Rating: 5}}},
		Profile:  ProfileSignals{RequiredCount: 4},
	}

	score := Compose(1, extreme, time.Now().UTC())

	require.Equal(t, 100, score.OverallScore)
	for _, cat := range []CategoryScore{
		score.Breakdown.LaunchEngagement,
		score.Breakdown.PeerReviews,
		score.Breakdown.EnterpriseFeedback,
		score.Breakdown.ProfileCompleteness,
	} {
		require.GreaterOrEqual(t, cat.Score, 0)
		require.LessOrEqual(t, cat.Score, cat.Max)
	}
}

func TestCompose_AllSourcesUnavailable(t *testing.T) {
	signals := SignalSet{
		Launches: LaunchSignals{Unavailable: true},
		Reviews:  ReviewSignals{Unavailable: true},
		Feedback: FeedbackSignals{Unavailable: true},
		Profile:  ProfileSignals{Unavailable: true},
	}

	score := Compose(9, signals, time.Now().UTC())

	require.Equal(t, 0, score.OverallScore)
	require.Equal(t, true, score.Breakdown.LaunchEngagement.Details["unavailable"])
	require.Equal(t, true, score.Breakdown.ProfileCompleteness.Details["unavailable"])
}
