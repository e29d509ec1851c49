package feedback

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, input Feedback) (Feedback, error)
	ListFeedbackByStartup(ctx context.Context, startupID int64) ([]Feedback, error)
	ListFeedbackByEnterprise(ctx context.Context, enterpriseUUID string) ([]Feedback, error)
}

type postgresFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &postgresFeedbackRepository{pool: pool}
}

const feedbackColumns = "id, startup_id, enterprise_uuid, rating, content, verified, created_at"

func scanFeedback(row pgx.Row) (Feedback, error) {
	var f Feedback
	err := row.Scan(&f.ID, &f.StartupID, &f.EnterpriseUUID, &f.Rating, &f.Content, &f.Verified, &f.CreatedAt)
	return f, err
}

func (r *postgresFeedbackRepository) CreateFeedback(ctx context.Context, input Feedback) (Feedback, error) {
	query := `INSERT INTO enterprise_feedback (startup_id, enterprise_uuid, rating, content, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING ` + feedbackColumns

	row := r.pool.QueryRow(ctx, query, input.StartupID, input.EnterpriseUUID, input.Rating, input.Content)
	return scanFeedback(row)
}

func (r *postgresFeedbackRepository) ListFeedbackByStartup(ctx context.Context, startupID int64) ([]Feedback, error) {
	return r.list(ctx, "startup_id = $1", startupID)
}

func (r *postgresFeedbackRepository) ListFeedbackByEnterprise(ctx context.Context, enterpriseUUID string) ([]Feedback, error) {
	return r.list(ctx, "enterprise_uuid = $1", enterpriseUUID)
}

func (r *postgresFeedbackRepository) list(ctx context.Context, where string, arg any) ([]Feedback, error) {
	query := `SELECT ` + feedbackColumns + `
              FROM enterprise_feedback
              WHERE ` + where + `
              ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	return items, rows.Err()
}
