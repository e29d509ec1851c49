package credibility

// Raw signal records for one startup, gathered from the four signal sources.
// A SignalSet is transient: it is assembled per recompute and never stored.
type SignalSet struct {
	Launches LaunchSignals
	Reviews  ReviewSignals
	Feedback FeedbackSignals
	Profile  ProfileSignals
}

type LaunchSignals struct {
	LaunchCount  int
	TotalUpvotes int
	Unavailable  bool
}

type ReviewSignals struct {
	TotalReviews    int
	VerifiedReviews int
	Unavailable     bool
}

type FeedbackEntry struct {
	Rating  int
	Content string
}

type FeedbackSignals struct {
	Entries     []FeedbackEntry
	Unavailable bool
}

// ProfileSignals reports which required profile fields are absent.
// RequiredCount is the size of the required-field set the missing names
// were checked against.
type ProfileSignals struct {
	Missing       []string
	RequiredCount int
	Unavailable   bool
}
