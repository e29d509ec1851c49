package launches

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLaunchNotFound = errors.New("launch not found")
	ErrAlreadyUpvoted = errors.New("already upvoted")
)

type LaunchRepository interface {
	CreateLaunch(ctx context.Context, input Launch) (Launch, error)
	GetLaunchByID(ctx context.Context, id int64) (Launch, error)
	ListLaunchesByStartup(ctx context.Context, startupID int64) ([]Launch, error)
	Upvote(ctx context.Context, launchID int64, userUUID string) (Launch, error)
}

type postgresLaunchRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLaunchRepository(pool *pgxpool.Pool) LaunchRepository {
	return &postgresLaunchRepository{pool: pool}
}

const launchColumns = "id, startup_id, title, tagline, description, upvotes, featured, created_at"

func scanLaunch(row pgx.Row) (Launch, error) {
	var l Launch
	err := row.Scan(&l.ID, &l.StartupID, &l.Title, &l.Tagline, &l.Description, &l.Upvotes, &l.Featured, &l.CreatedAt)
	return l, err
}

func (r *postgresLaunchRepository) CreateLaunch(ctx context.Context, input Launch) (Launch, error) {
	query := `INSERT INTO launches (startup_id, title, tagline, description, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING ` + launchColumns

	row := r.pool.QueryRow(ctx, query, input.StartupID, input.Title, input.Tagline, input.Description)
	return scanLaunch(row)
}

func (r *postgresLaunchRepository) GetLaunchByID(ctx context.Context, id int64) (Launch, error) {
	query := `SELECT ` + launchColumns + ` FROM launches WHERE id = $1`

	l, err := scanLaunch(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Launch{}, ErrLaunchNotFound
		}
		return Launch{}, err
	}

	return l, nil
}

func (r *postgresLaunchRepository) ListLaunchesByStartup(ctx context.Context, startupID int64) ([]Launch, error) {
	query := `SELECT ` + launchColumns + `
              FROM launches
              WHERE startup_id = $1
              ORDER BY upvotes DESC, id ASC`

	rows, err := r.pool.Query(ctx, query, startupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Launch, 0)
	for rows.Next() {
		l, err := scanLaunch(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}

	return items, rows.Err()
}

// Upvote records a one-per-user vote and increments the launch counter in a
// single transaction. A duplicate vote maps the unique violation to
// ErrAlreadyUpvoted.
func (r *postgresLaunchRepository) Upvote(ctx context.Context, launchID int64, userUUID string) (Launch, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Launch{}, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "INSERT INTO launch_upvotes (launch_id, user_uuid) VALUES ($1, $2)", launchID, userUUID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return Launch{}, ErrAlreadyUpvoted
			case "23503":
				return Launch{}, ErrLaunchNotFound
			}
		}
		return Launch{}, err
	}

	row := tx.QueryRow(ctx, "UPDATE launches SET upvotes = upvotes + 1 WHERE id = $1 RETURNING "+launchColumns, launchID)
	l, err := scanLaunch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Launch{}, ErrLaunchNotFound
		}
		return Launch{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Launch{}, err
	}

	return l, nil
}
