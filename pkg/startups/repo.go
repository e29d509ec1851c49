package startups

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrStartupNotFound = errors.New("startup not found")

type StartupRepository interface {
	CreateStartup(ctx context.Context, input Startup) (Startup, error)
	UpdateStartup(ctx context.Context, input Startup) (Startup, error)
	GetStartupByID(ctx context.Context, id int64) (Startup, error)
	GetStartupByOwner(ctx context.Context, ownerUUID string) (Startup, error)
	ListStartups(ctx context.Context, limit, offset int) ([]Startup, int64, error)
	Discover(ctx context.Context, filter DiscoverFilter) ([]Startup, error)
	SetCredibilityScore(ctx context.Context, id int64, score int) error
}

type postgresStartupRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresStartupRepository(pool *pgxpool.Pool) StartupRepository {
	return &postgresStartupRepository{pool: pool}
}

const startupColumns = "id, owner_uuid, name, industry, arr_range, description, contact_email, credibility_score, created_at"

func scanStartup(row pgx.Row) (Startup, error) {
	var s Startup
	err := row.Scan(&s.ID, &s.OwnerUUID, &s.Name, &s.Industry, &s.ARRRange, &s.Description, &s.ContactEmail, &s.CredibilityScore, &s.CreatedAt)
	return s, err
}

func (r *postgresStartupRepository) CreateStartup(ctx context.Context, input Startup) (Startup, error) {
	query := `INSERT INTO startups (owner_uuid, name, industry, arr_range, description, contact_email, credibility_score, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, 0, NOW())
              RETURNING ` + startupColumns

	row := r.pool.QueryRow(ctx, query, input.OwnerUUID, input.Name, input.Industry, input.ARRRange, input.Description, input.ContactEmail)
	return scanStartup(row)
}

func (r *postgresStartupRepository) UpdateStartup(ctx context.Context, input Startup) (Startup, error) {
	query := `UPDATE startups
              SET name = $1, industry = $2, arr_range = $3, description = $4, contact_email = $5
              WHERE id = $6
              RETURNING ` + startupColumns

	row := r.pool.QueryRow(ctx, query, input.Name, input.Industry, input.ARRRange, input.Description, input.ContactEmail, input.ID)

	updated, err := scanStartup(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Startup{}, ErrStartupNotFound
		}
		return Startup{}, err
	}

	return updated, nil
}

func (r *postgresStartupRepository) GetStartupByID(ctx context.Context, id int64) (Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE id = $1`

	s, err := scanStartup(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Startup{}, ErrStartupNotFound
		}
		return Startup{}, err
	}

	return s, nil
}

func (r *postgresStartupRepository) GetStartupByOwner(ctx context.Context, ownerUUID string) (Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE owner_uuid = $1`

	s, err := scanStartup(r.pool.QueryRow(ctx, query, ownerUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Startup{}, ErrStartupNotFound
		}
		return Startup{}, err
	}

	return s, nil
}

func (r *postgresStartupRepository) ListStartups(ctx context.Context, limit, offset int) ([]Startup, int64, error) {
	query := `SELECT ` + startupColumns + `
              FROM startups
              ORDER BY id
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Startup, 0)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM startups")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Discover returns the candidate catalog for a discovery request. Specified
// filter fields are ANDed; unspecified fields impose no constraint. The
// returned order is the catalog order downstream ranking treats as the
// stable tiebreak.
func (r *postgresStartupRepository) Discover(ctx context.Context, filter DiscoverFilter) ([]Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE 1=1`
	args := make([]any, 0, 3)

	if filter.Industry != nil {
		args = append(args, *filter.Industry)
		query += fmt.Sprintf(" AND industry = $%d", len(args))
	}
	if filter.ARRRange != nil {
		args = append(args, *filter.ARRRange)
		query += fmt.Sprintf(" AND arr_range = $%d", len(args))
	}
	if filter.MinScore != nil {
		args = append(args, *filter.MinScore)
		query += fmt.Sprintf(" AND credibility_score >= $%d", len(args))
	}

	switch filter.Sort {
	case SortRecent:
		query += " ORDER BY created_at DESC, id ASC"
	default:
		query += " ORDER BY credibility_score DESC, id ASC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Startup, 0)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *postgresStartupRepository) SetCredibilityScore(ctx context.Context, id int64, score int) error {
	cmd, err := r.pool.Exec(ctx, "UPDATE startups SET credibility_score = $1 WHERE id = $2", score, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrStartupNotFound
	}
	return nil
}
