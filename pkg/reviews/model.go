package reviews

import "time"

const (
	RoleEnterprise = "enterprise"
	RoleCustomer   = "customer"
)

type Review struct {
	ID           int64     `json:"id"`
	StartupID    int64     `json:"startup_id"`
	UserUUID     string    `json:"user_uuid"`
	ReviewerRole string    `json:"reviewer_role"`
	Content      string    `json:"content"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}
