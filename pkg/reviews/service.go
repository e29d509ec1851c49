package reviews

import (
	"context"
	"errors"
	"log"
)

var (
	ErrInvalidRole     = errors.New("invalid reviewer role")
	ErrContentRequired = errors.New("review content is required")
)

// Rescorer triggers a credibility recompute after a signal-producing write.
type Rescorer interface {
	Rescore(ctx context.Context, startupID int64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, input Review) (Review, error)
	ListReviewsByStartup(ctx context.Context, startupID int64) ([]Review, error)
	VerifyReview(ctx context.Context, id int64) (Review, error)
}

type reviewService struct {
	repo     ReviewRepository
	rescorer Rescorer
}

func NewReviewService(repo ReviewRepository, rescorer Rescorer) ReviewService {
	return &reviewService{repo: repo, rescorer: rescorer}
}

func (s *reviewService) CreateReview(ctx context.Context, input Review) (Review, error) {
	if input.ReviewerRole != RoleEnterprise && input.ReviewerRole != RoleCustomer {
		return Review{}, ErrInvalidRole
	}
	if input.Content == "" {
		return Review{}, ErrContentRequired
	}

	created, err := s.repo.CreateReview(ctx, input)
	if err != nil {
		return Review{}, err
	}

	s.rescore(ctx, created.StartupID)
	return created, nil
}

func (s *reviewService) ListReviewsByStartup(ctx context.Context, startupID int64) ([]Review, error) {
	return s.repo.ListReviewsByStartup(ctx, startupID)
}

// VerifyReview marks a review as verified, which raises its weight in the
// credibility score.
func (s *reviewService) VerifyReview(ctx context.Context, id int64) (Review, error) {
	verified, err := s.repo.VerifyReview(ctx, id)
	if err != nil {
		return Review{}, err
	}

	s.rescore(ctx, verified.StartupID)
	return verified, nil
}

func (s *reviewService) rescore(ctx context.Context, startupID int64) {
	if s.rescorer == nil {
		return
	}
	if err := s.rescorer.Rescore(ctx, startupID); err != nil {
		log.Printf("credibility rescore failed for startup %d: %v", startupID, err)
	}
}
