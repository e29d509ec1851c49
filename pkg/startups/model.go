package startups

import "time"

// Sort modes accepted by the discovery catalog.
const (
	SortCredibility = "credibility"
	SortRecent      = "recent"
)

type Startup struct {
	ID               int64     `json:"id"`
	OwnerUUID        string    `json:"owner_uuid"`
	Name             string    `json:"name"`
	Industry         string    `json:"industry"`
	ARRRange         string    `json:"arr_range"`
	Description      string    `json:"description"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	CredibilityScore int       `json:"credibility_score"`
	CreatedAt        time.Time `json:"created_at"`
}

type StartupList struct {
	Items []Startup `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// DiscoverFilter is the field subset discovery callers pass to the catalog.
// Nil pointer fields impose no constraint.
type DiscoverFilter struct {
	Industry *string
	ARRRange *string
	MinScore *int
	Sort     string
}

// Industries and ARRRanges are the fixed vocabularies shared by startup
// profiles, enterprise preferences and discovery filters. ARRRanges is
// ordered from smallest revenue band to largest.
var (
	Industries = []string{"Fintech", "SaaS", "AI", "Healthtech", "E-commerce"}
	ARRRanges  = []string{"0-5 Cr", "5-25 Cr", "25-100 Cr", "100+ Cr"}
)

func IsValidIndustry(industry string) bool {
	for _, v := range Industries {
		if v == industry {
			return true
		}
	}
	return false
}

func IsValidARRRange(arrRange string) bool {
	for _, v := range ARRRanges {
		if v == arrRange {
			return true
		}
	}
	return false
}
