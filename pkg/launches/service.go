package launches

import (
	"context"
	"errors"
	"log"
)

var ErrTitleRequired = errors.New("launch title is required")

// Rescorer triggers a credibility recompute after a signal-producing write.
type Rescorer interface {
	Rescore(ctx context.Context, startupID int64) error
}

type LaunchService interface {
	CreateLaunch(ctx context.Context, input Launch) (Launch, error)
	ListLaunchesByStartup(ctx context.Context, startupID int64) ([]Launch, error)
	UpvoteLaunch(ctx context.Context, launchID int64, userUUID string) (Launch, error)
}

type launchService struct {
	repo     LaunchRepository
	rescorer Rescorer
}

func NewLaunchService(repo LaunchRepository, rescorer Rescorer) LaunchService {
	return &launchService{repo: repo, rescorer: rescorer}
}

func (s *launchService) CreateLaunch(ctx context.Context, input Launch) (Launch, error) {
	if input.Title == "" {
		return Launch{}, ErrTitleRequired
	}

	created, err := s.repo.CreateLaunch(ctx, input)
	if err != nil {
		return Launch{}, err
	}

	s.rescore(ctx, created.StartupID)
	return created, nil
}

func (s *launchService) ListLaunchesByStartup(ctx context.Context, startupID int64) ([]Launch, error) {
	return s.repo.ListLaunchesByStartup(ctx, startupID)
}

func (s *launchService) UpvoteLaunch(ctx context.Context, launchID int64, userUUID string) (Launch, error) {
	launch, err := s.repo.Upvote(ctx, launchID, userUUID)
	if err != nil {
		return Launch{}, err
	}

	s.rescore(ctx, launch.StartupID)
	return launch, nil
}

// rescore is best-effort: a failed recompute never fails the write that
// produced the signal.
func (s *launchService) rescore(ctx context.Context, startupID int64) {
	if s.rescorer == nil {
		return
	}
	if err := s.rescorer.Rescore(ctx, startupID); err != nil {
		log.Printf("credibility rescore failed for startup %d: %v", startupID, err)
	}
}
