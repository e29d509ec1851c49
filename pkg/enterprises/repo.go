package enterprises

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("enterprise profile not found")

type ProfileRepository interface {
	CreateProfile(ctx context.Context, input Profile) (Profile, error)
	GetProfileByUser(ctx context.Context, userUUID string) (Profile, error)
	ReplaceProfile(ctx context.Context, input Profile) (Profile, error)
}

type postgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresProfileRepository{pool: pool}
}

const profileColumns = "id, user_uuid, company_name, industry, company_size, location, interested_industries, preferred_arr_ranges, engagement_stage, created_at, updated_at"

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserUUID, &p.CompanyName, &p.Industry, &p.CompanySize, &p.Location,
		&p.InterestedIndustries, &p.PreferredARRRanges, &p.EngagementStage, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *postgresProfileRepository) CreateProfile(ctx context.Context, input Profile) (Profile, error) {
	query := `INSERT INTO enterprise_profiles
              (user_uuid, company_name, industry, company_size, location, interested_industries, preferred_arr_ranges, engagement_stage, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
              RETURNING ` + profileColumns

	row := r.pool.QueryRow(ctx, query,
		input.UserUUID, input.CompanyName, input.Industry, input.CompanySize, input.Location,
		input.InterestedIndustries, input.PreferredARRRanges, input.EngagementStage)
	return scanProfile(row)
}

func (r *postgresProfileRepository) GetProfileByUser(ctx context.Context, userUUID string) (Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM enterprise_profiles WHERE user_uuid = $1`

	p, err := scanProfile(r.pool.QueryRow(ctx, query, userUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}

	return p, nil
}

// ReplaceProfile writes the full row image in one statement, so concurrent
// readers see either the old value or the new one, never a mix.
func (r *postgresProfileRepository) ReplaceProfile(ctx context.Context, input Profile) (Profile, error) {
	query := `UPDATE enterprise_profiles
              SET company_name = $1, industry = $2, company_size = $3, location = $4,
                  interested_industries = $5, preferred_arr_ranges = $6, engagement_stage = $7,
                  updated_at = NOW()
              WHERE user_uuid = $8
              RETURNING ` + profileColumns

	row := r.pool.QueryRow(ctx, query,
		input.CompanyName, input.Industry, input.CompanySize, input.Location,
		input.InterestedIndustries, input.PreferredARRRanges, input.EngagementStage, input.UserUUID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}

	return p, nil
}
