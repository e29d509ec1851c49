package feedback

import "time"

type Feedback struct {
	ID             int64     `json:"id"`
	StartupID      int64     `json:"startup_id"`
	EnterpriseUUID string    `json:"enterprise_uuid"`
	Rating         int       `json:"rating"`
	Content        string    `json:"content"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
}
