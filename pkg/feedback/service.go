package feedback

import (
	"context"
	"errors"
	"fmt"
	"log"

	"launchbridge/pkg/sendemail"
	"launchbridge/pkg/startups"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Rescorer triggers a credibility recompute after a signal-producing write.
type Rescorer interface {
	Rescore(ctx context.Context, startupID int64) error
}

// StartupGetter resolves the startup a feedback entry targets, for the
// owner notification email.
type StartupGetter interface {
	GetStartupByID(ctx context.Context, id int64) (startups.Startup, error)
}

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, input Feedback) (Feedback, error)
	ListFeedbackByStartup(ctx context.Context, startupID int64) ([]Feedback, error)
	ListFeedbackByEnterprise(ctx context.Context, enterpriseUUID string) ([]Feedback, error)
}

type feedbackService struct {
	repo     FeedbackRepository
	rescorer Rescorer
	getter   StartupGetter
	es       sendemail.EmailService
}

func NewFeedbackService(repo FeedbackRepository, rescorer Rescorer, getter StartupGetter, es sendemail.EmailService) FeedbackService {
	return &feedbackService{repo: repo, rescorer: rescorer, getter: getter, es: es}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, input Feedback) (Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return Feedback{}, ErrInvalidRating
	}

	created, err := s.repo.CreateFeedback(ctx, input)
	if err != nil {
		return Feedback{}, err
	}

	if s.rescorer != nil {
		if err := s.rescorer.Rescore(ctx, created.StartupID); err != nil {
			log.Printf("credibility rescore failed for startup %d: %v", created.StartupID, err)
		}
	}

	s.notifyOwner(ctx, created)
	return created, nil
}

func (s *feedbackService) ListFeedbackByStartup(ctx context.Context, startupID int64) ([]Feedback, error) {
	return s.repo.ListFeedbackByStartup(ctx, startupID)
}

func (s *feedbackService) ListFeedbackByEnterprise(ctx context.Context, enterpriseUUID string) ([]Feedback, error) {
	return s.repo.ListFeedbackByEnterprise(ctx, enterpriseUUID)
}

// notifyOwner emails the startup's contact address about new enterprise
// feedback. Best-effort: notification failures are logged, never surfaced.
func (s *feedbackService) notifyOwner(ctx context.Context, f Feedback) {
	if s.es == nil || s.getter == nil {
		return
	}

	startup, err := s.getter.GetStartupByID(ctx, f.StartupID)
	if err != nil || startup.ContactEmail == "" {
		return
	}

	subject := "New enterprise feedback on " + startup.Name
	plain := fmt.Sprintf("Your startup received a %d/5 rating from an enterprise. Your credibility score has been updated.", f.Rating)
	html := fmt.Sprintf("<p>Your startup received a <strong>%d/5</strong> rating from an enterprise.</p><p>Your credibility score has been updated.</p>", f.Rating)

	if err := s.es.SendEmail(subject, startup.ContactEmail, plain, html); err != nil {
		log.Printf("feedback notification email failed for startup %d: %v", f.StartupID, err)
	}
}
