package enterprises

import (
	"context"
	"errors"

	"launchbridge/pkg/startups"
)

var (
	ErrProfileExists      = errors.New("enterprise profile already exists for this user")
	ErrInvalidPreferences = errors.New("preferences contain unknown industry or arr range values")
)

type ProfileService interface {
	CreateProfile(ctx context.Context, input Profile) (Profile, error)
	GetProfileByUser(ctx context.Context, userUUID string) (Profile, error)
	UpdateProfile(ctx context.Context, userUUID string, patch ProfilePatch) (Profile, error)
}

type profileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func validatePreferences(p Profile) error {
	for _, ind := range p.InterestedIndustries {
		if !startups.IsValidIndustry(ind) {
			return ErrInvalidPreferences
		}
	}
	for _, arr := range p.PreferredARRRanges {
		if !startups.IsValidARRRange(arr) {
			return ErrInvalidPreferences
		}
	}
	return nil
}

func (s *profileService) CreateProfile(ctx context.Context, input Profile) (Profile, error) {
	if err := validatePreferences(input); err != nil {
		return Profile{}, err
	}

	_, err := s.repo.GetProfileByUser(ctx, input.UserUUID)
	if err == nil {
		return Profile{}, ErrProfileExists
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return Profile{}, err
	}

	return s.repo.CreateProfile(ctx, input)
}

func (s *profileService) GetProfileByUser(ctx context.Context, userUUID string) (Profile, error) {
	return s.repo.GetProfileByUser(ctx, userUUID)
}

// UpdateProfile reads the current profile, applies the patch into a fresh
// value, and writes the whole row back. Preference readers never observe a
// partially-applied update.
func (s *profileService) UpdateProfile(ctx context.Context, userUUID string, patch ProfilePatch) (Profile, error) {
	current, err := s.repo.GetProfileByUser(ctx, userUUID)
	if err != nil {
		return Profile{}, err
	}

	next := current.Apply(patch)
	if err := validatePreferences(next); err != nil {
		return Profile{}, err
	}

	return s.repo.ReplaceProfile(ctx, next)
}
