package discovery

import (
	"errors"
	"fmt"

	"launchbridge/pkg/startups"
)

var ErrInvalidCriteria = errors.New("invalid discovery criteria")

// Criteria is the filter set a discovery request carries. Nil pointer
// fields impose no constraint.
type Criteria struct {
	Industry *string `form:"industry" json:"industry,omitempty"`
	ARRRange *string `form:"arr_range" json:"arr_range,omitempty"`
	MinScore *int    `form:"min_score" json:"min_score,omitempty"`
	Sort     string  `form:"sort" json:"sort,omitempty"`
}

func (c Criteria) Validate() error {
	if c.MinScore != nil && (*c.MinScore < 0 || *c.MinScore > 100) {
		return fmt.Errorf("%w: min_score must be between 0 and 100", ErrInvalidCriteria)
	}
	switch c.Sort {
	case "", startups.SortCredibility, startups.SortRecent:
	default:
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidCriteria, c.Sort)
	}
	return nil
}

// Filter translates the criteria into the catalog query filter. An empty
// Sort defaults to credibility ordering.
func (c Criteria) Filter() startups.DiscoverFilter {
	sort := c.Sort
	if sort == "" {
		sort = startups.SortCredibility
	}
	return startups.DiscoverFilter{
		Industry: c.Industry,
		ARRRange: c.ARRRange,
		MinScore: c.MinScore,
		Sort:     sort,
	}
}

// Matches re-checks one candidate against the criteria. The catalog query
// already applies the same constraints; this guards rows served by catalog
// implementations that filter more loosely.
func (c Criteria) Matches(s startups.Startup) bool {
	if c.Industry != nil && s.Industry != *c.Industry {
		return false
	}
	if c.ARRRange != nil && s.ARRRange != *c.ARRRange {
		return false
	}
	if c.MinScore != nil && s.CredibilityScore < *c.MinScore {
		return false
	}
	return true
}
