package enterprises

import "time"

// Profile is an enterprise's company profile plus its discovery preferences.
// Treated as an immutable value: updates produce a whole new row image, so
// readers never observe a half-applied patch.
type Profile struct {
	ID                   int64     `json:"id"`
	UserUUID             string    `json:"user_uuid"`
	CompanyName          string    `json:"company_name"`
	Industry             string    `json:"industry"`
	CompanySize          string    `json:"company_size"`
	Location             string    `json:"location"`
	InterestedIndustries []string  `json:"interested_industries"`
	PreferredARRRanges   []string  `json:"preferred_arr_ranges"`
	EngagementStage      string    `json:"engagement_stage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ProfilePatch carries optional per-field updates. Nil fields are left
// untouched when the patch is applied.
type ProfilePatch struct {
	CompanyName          *string   `json:"company_name"`
	Industry             *string   `json:"industry"`
	CompanySize          *string   `json:"company_size"`
	Location             *string   `json:"location"`
	InterestedIndustries *[]string `json:"interested_industries"`
	PreferredARRRanges   *[]string `json:"preferred_arr_ranges"`
	EngagementStage      *string   `json:"engagement_stage"`
}

// Apply returns a new Profile with the patch folded in. The receiver is
// never mutated.
func (p Profile) Apply(patch ProfilePatch) Profile {
	next := p
	if patch.CompanyName != nil {
		next.CompanyName = *patch.CompanyName
	}
	if patch.Industry != nil {
		next.Industry = *patch.Industry
	}
	if patch.CompanySize != nil {
		next.CompanySize = *patch.CompanySize
	}
	if patch.Location != nil {
		next.Location = *patch.Location
	}
	if patch.InterestedIndustries != nil {
		next.InterestedIndustries = append([]string(nil), (*patch.InterestedIndustries)...)
	}
	if patch.PreferredARRRanges != nil {
		next.PreferredARRRanges = append([]string(nil), (*patch.PreferredARRRanges)...)
	}
	if patch.EngagementStage != nil {
		next.EngagementStage = *patch.EngagementStage
	}
	return next
}
