package credibility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"launchbridge/pkg/cache"
)

const cacheTTL = 5 * time.Minute

// ScoreWriter persists the overall score onto the startup row so catalog
// queries can filter and sort on it. The startups repository satisfies it.
type ScoreWriter interface {
	SetCredibilityScore(ctx context.Context, id int64, score int) error
}

type ScoreService interface {
	// ScoreFor returns the current credibility score for a startup,
	// serving from cache when a fresh breakdown is available.
	ScoreFor(ctx context.Context, startupID int64) (Score, error)

	// Rescore recomputes and persists the score from live signals.
	Rescore(ctx context.Context, startupID int64) error
}

type scoreService struct {
	signals SignalRepository
	writer  ScoreWriter
	cache   *cache.Client
	now     func() time.Time
}

func NewScoreService(signals SignalRepository, writer ScoreWriter, cacheClient *cache.Client) ScoreService {
	return &scoreService{
		signals: signals,
		writer:  writer,
		cache:   cacheClient,
		now:     time.Now,
	}
}

func cacheKey(startupID int64) string {
	return fmt.Sprintf("credibility:%d", startupID)
}

func (s *scoreService) ScoreFor(ctx context.Context, startupID int64) (Score, error) {
	if cached, err := s.cache.Get(ctx, cacheKey(startupID)); err == nil {
		var score Score
		if err := json.Unmarshal([]byte(cached), &score); err == nil {
			return score, nil
		}
		log.Printf("credibility: discarding malformed cache entry for startup %d", startupID)
	}

	return s.recompute(ctx, startupID)
}

func (s *scoreService) Rescore(ctx context.Context, startupID int64) error {
	_, err := s.recompute(ctx, startupID)
	return err
}

// recompute gathers signals, composes the score, persists the overall
// value, and refreshes the cache. Signal sources degrade independently:
// a failing source scores 0 and is flagged unavailable rather than
// failing the whole recompute. Only a missing startup aborts.
func (s *scoreService) recompute(ctx context.Context, startupID int64) (Score, error) {
	profile, err := s.signals.ProfileSignals(ctx, startupID)
	if err != nil {
		if errors.Is(err, ErrStartupNotFound) {
			return Score{}, ErrStartupNotFound
		}
		log.Printf("credibility: profile signals unavailable for startup %d: %v", startupID, err)
		profile = ProfileSignals{Unavailable: true}
	}

	launches, err := s.signals.LaunchSignals(ctx, startupID)
	if err != nil {
		log.Printf("credibility: launch signals unavailable for startup %d: %v", startupID, err)
		launches = LaunchSignals{Unavailable: true}
	}

	reviews, err := s.signals.ReviewSignals(ctx, startupID)
	if err != nil {
		log.Printf("credibility: review signals unavailable for startup %d: %v", startupID, err)
		reviews = ReviewSignals{Unavailable: true}
	}

	feedback, err := s.signals.FeedbackSignals(ctx, startupID)
	if err != nil {
		log.Printf("credibility: feedback signals unavailable for startup %d: %v", startupID, err)
		feedback = FeedbackSignals{Unavailable: true}
	}

	score := Compose(startupID, SignalSet{
		Launches: launches,
		Reviews:  reviews,
		Feedback: feedback,
		Profile:  profile,
	}, s.now().UTC())

	if err := s.writer.SetCredibilityScore(ctx, startupID, score.OverallScore); err != nil {
		return Score{}, fmt.Errorf("persist credibility score for startup %d: %w", startupID, err)
	}

	if payload, err := json.Marshal(score); err == nil {
		if err := s.cache.Set(ctx, cacheKey(startupID), string(payload), cacheTTL); err != nil {
			log.Printf("credibility: cache set failed for startup %d: %v", startupID, err)
		}
	}

	return score, nil
}
