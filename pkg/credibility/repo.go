package credibility

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrStartupNotFound = errors.New("startup not found")

// SignalRepository gathers the raw inputs of one credibility recompute.
// Each method covers a single signal source so the service can degrade
// sources independently.
type SignalRepository interface {
	LaunchSignals(ctx context.Context, startupID int64) (LaunchSignals, error)
	ReviewSignals(ctx context.Context, startupID int64) (ReviewSignals, error)
	FeedbackSignals(ctx context.Context, startupID int64) (FeedbackSignals, error)
	ProfileSignals(ctx context.Context, startupID int64) (ProfileSignals, error)
}

type postgresSignalRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSignalRepository(pool *pgxpool.Pool) SignalRepository {
	return &postgresSignalRepository{pool: pool}
}

func (r *postgresSignalRepository) LaunchSignals(ctx context.Context, startupID int64) (LaunchSignals, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(upvotes), 0)
              FROM launches
              WHERE startup_id = $1`

	var out LaunchSignals
	row := r.pool.QueryRow(ctx, query, startupID)
	if err := row.Scan(&out.LaunchCount, &out.TotalUpvotes); err != nil {
		return LaunchSignals{}, err
	}

	return out, nil
}

func (r *postgresSignalRepository) ReviewSignals(ctx context.Context, startupID int64) (ReviewSignals, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE verified)
              FROM reviews
              WHERE startup_id = $1`

	var out ReviewSignals
	row := r.pool.QueryRow(ctx, query, startupID)
	if err := row.Scan(&out.TotalReviews, &out.VerifiedReviews); err != nil {
		return ReviewSignals{}, err
	}

	return out, nil
}

func (r *postgresSignalRepository) FeedbackSignals(ctx context.Context, startupID int64) (FeedbackSignals, error) {
	query := `SELECT rating, content
              FROM enterprise_feedback
              WHERE startup_id = $1
              ORDER BY id`

	rows, err := r.pool.Query(ctx, query, startupID)
	if err != nil {
		return FeedbackSignals{}, err
	}
	defer rows.Close()

	out := FeedbackSignals{Entries: make([]FeedbackEntry, 0)}
	for rows.Next() {
		var e FeedbackEntry
		if err := rows.Scan(&e.Rating, &e.Content); err != nil {
			return FeedbackSignals{}, err
		}
		out.Entries = append(out.Entries, e)
	}

	if err := rows.Err(); err != nil {
		return FeedbackSignals{}, err
	}

	return out, nil
}

// Fields the profile completeness category checks. Names with a minimum
// length are only counted present above that length.
var requiredProfileFields = []string{"name", "industry", "arr_range", "description"}

// ProfileSignals returns ErrStartupNotFound when the startup row does not
// exist, so a missing startup is distinguishable from an empty profile.
func (r *postgresSignalRepository) ProfileSignals(ctx context.Context, startupID int64) (ProfileSignals, error) {
	query := `SELECT name, industry, arr_range, description
              FROM startups
              WHERE id = $1`

	var name, industry, arrRange, description string
	row := r.pool.QueryRow(ctx, query, startupID)
	if err := row.Scan(&name, &industry, &arrRange, &description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileSignals{}, ErrStartupNotFound
		}
		return ProfileSignals{}, err
	}

	missing := make([]string, 0)
	if len(strings.TrimSpace(name)) <= 2 {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(industry) == "" {
		missing = append(missing, "industry")
	}
	if strings.TrimSpace(arrRange) == "" {
		missing = append(missing, "arr_range")
	}
	if len(strings.TrimSpace(description)) <= 20 {
		missing = append(missing, "description")
	}

	return ProfileSignals{
		Missing:       missing,
		RequiredCount: len(requiredProfileFields),
	}, nil
}
