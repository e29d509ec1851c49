package startups

import (
	"context"
	"errors"
)

var (
	ErrInvalidIndustry = errors.New("invalid industry")
	ErrInvalidARRRange = errors.New("invalid arr range")
	ErrStartupExists   = errors.New("startup already exists for this owner")
)

type StartupService interface {
	CreateStartup(ctx context.Context, input Startup) (Startup, error)
	UpdateStartup(ctx context.Context, input Startup) (Startup, error)
	GetStartupByID(ctx context.Context, id int64) (Startup, error)
	GetStartupByOwner(ctx context.Context, ownerUUID string) (Startup, error)
	ListStartups(ctx context.Context, page, limit int) ([]Startup, int64, error)
}

type startupService struct {
	repo StartupRepository
}

func NewStartupService(repo StartupRepository) StartupService {
	return &startupService{repo: repo}
}

func validateProfileEnums(input Startup) error {
	if !IsValidIndustry(input.Industry) {
		return ErrInvalidIndustry
	}
	if !IsValidARRRange(input.ARRRange) {
		return ErrInvalidARRRange
	}
	return nil
}

// CreateStartup enforces one startup per owner.
func (s *startupService) CreateStartup(ctx context.Context, input Startup) (Startup, error) {
	if err := validateProfileEnums(input); err != nil {
		return Startup{}, err
	}

	_, err := s.repo.GetStartupByOwner(ctx, input.OwnerUUID)
	if err == nil {
		return Startup{}, ErrStartupExists
	}
	if !errors.Is(err, ErrStartupNotFound) {
		return Startup{}, err
	}

	return s.repo.CreateStartup(ctx, input)
}

func (s *startupService) UpdateStartup(ctx context.Context, input Startup) (Startup, error) {
	if err := validateProfileEnums(input); err != nil {
		return Startup{}, err
	}
	return s.repo.UpdateStartup(ctx, input)
}

func (s *startupService) GetStartupByID(ctx context.Context, id int64) (Startup, error) {
	return s.repo.GetStartupByID(ctx, id)
}

func (s *startupService) GetStartupByOwner(ctx context.Context, ownerUUID string) (Startup, error) {
	return s.repo.GetStartupByOwner(ctx, ownerUUID)
}

func (s *startupService) ListStartups(ctx context.Context, page, limit int) ([]Startup, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListStartups(ctx, limit, offset)
}
