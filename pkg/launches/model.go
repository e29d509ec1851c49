package launches

import "time"

type Launch struct {
	ID          int64     `json:"id"`
	StartupID   int64     `json:"startup_id"`
	Title       string    `json:"title"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	Upvotes     int       `json:"upvotes"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
