package reviews

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	CreateReview(ctx context.Context, input Review) (Review, error)
	ListReviewsByStartup(ctx context.Context, startupID int64) ([]Review, error)
	VerifyReview(ctx context.Context, id int64) (Review, error)
}

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

const reviewColumns = "id, startup_id, user_uuid, reviewer_role, content, verified, created_at"

func scanReview(row pgx.Row) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.StartupID, &rv.UserUUID, &rv.ReviewerRole, &rv.Content, &rv.Verified, &rv.CreatedAt)
	return rv, err
}

func (r *postgresReviewRepository) CreateReview(ctx context.Context, input Review) (Review, error) {
	query := `INSERT INTO reviews (startup_id, user_uuid, reviewer_role, content, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING ` + reviewColumns

	row := r.pool.QueryRow(ctx, query, input.StartupID, input.UserUUID, input.ReviewerRole, input.Content)
	return scanReview(row)
}

func (r *postgresReviewRepository) ListReviewsByStartup(ctx context.Context, startupID int64) ([]Review, error) {
	query := `SELECT ` + reviewColumns + `
              FROM reviews
              WHERE startup_id = $1
              ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, startupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rv)
	}

	return items, rows.Err()
}

func (r *postgresReviewRepository) VerifyReview(ctx context.Context, id int64) (Review, error) {
	row := r.pool.QueryRow(ctx, "UPDATE reviews SET verified = true WHERE id = $1 RETURNING "+reviewColumns, id)

	rv, err := scanReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, err
	}

	return rv, nil
}
