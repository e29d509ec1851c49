package discovery

import (
	"context"
	"errors"
	"log"
	"sort"

	"launchbridge/pkg/enterprises"
	"launchbridge/pkg/startups"
)

// CatalogSource serves discovery candidates. The startups repository
// satisfies it.
type CatalogSource interface {
	Discover(ctx context.Context, filter startups.DiscoverFilter) ([]startups.Startup, error)
}

// PreferenceSource resolves the requesting enterprise's saved preferences.
// The enterprises repository satisfies it.
type PreferenceSource interface {
	GetProfileByUser(ctx context.Context, userUUID string) (enterprises.Profile, error)
}

// RankedStartup is a catalog entry annotated with why it was recommended.
type RankedStartup struct {
	startups.Startup
	MatchWeight  int      `json:"match_weight"`
	MatchReasons []string `json:"match_reasons"`
}

// Result is the two-tier outcome of one discovery run. Recommended and
// General never share an entry; Personalized reports whether preferences
// were applied.
type Result struct {
	Recommended  []RankedStartup    `json:"recommended"`
	General      []startups.Startup `json:"general"`
	Personalized bool               `json:"personalized"`
}

type Pipeline struct {
	catalog CatalogSource
	prefs   PreferenceSource
	matcher *Matcher
}

func NewPipeline(catalog CatalogSource, prefs PreferenceSource, matcher *Matcher) *Pipeline {
	if matcher == nil {
		matcher = NewDefaultMatcher()
	}
	return &Pipeline{catalog: catalog, prefs: prefs, matcher: matcher}
}

// Discover runs one full discovery pass: validate criteria, fetch the
// candidate catalog, then split it into recommended and general tiers
// using the requester's preferences. An anonymous request (empty
// userUUID) or an unresolvable profile yields an unpersonalized result
// with every candidate in the general tier. Catalog failures are
// returned as-is: no partial results.
func (p *Pipeline) Discover(ctx context.Context, userUUID string, criteria Criteria) (Result, error) {
	if err := criteria.Validate(); err != nil {
		return Result{}, err
	}

	candidates, err := p.catalog.Discover(ctx, criteria.Filter())
	if err != nil {
		return Result{}, err
	}

	filtered := make([]startups.Startup, 0, len(candidates))
	for _, s := range candidates {
		if criteria.Matches(s) {
			filtered = append(filtered, s)
		}
	}

	profile, personalized := p.resolveProfile(ctx, userUUID)
	if !personalized {
		return Result{
			Recommended:  []RankedStartup{},
			General:      filtered,
			Personalized: false,
		}, nil
	}

	recommended := make([]RankedStartup, 0)
	general := make([]startups.Startup, 0)
	for _, s := range filtered {
		match := p.matcher.Match(profile, s)
		if p.matcher.Recommended(match) {
			recommended = append(recommended, RankedStartup{
				Startup:      s,
				MatchWeight:  match.Weight,
				MatchReasons: match.Reasons,
			})
		} else {
			general = append(general, s)
		}
	}

	// Stable sort keeps the catalog order as the final tiebreak.
	sort.SliceStable(recommended, func(i, j int) bool {
		if recommended[i].MatchWeight != recommended[j].MatchWeight {
			return recommended[i].MatchWeight > recommended[j].MatchWeight
		}
		return recommended[i].CredibilityScore > recommended[j].CredibilityScore
	})

	return Result{
		Recommended:  recommended,
		General:      general,
		Personalized: true,
	}, nil
}

func (p *Pipeline) resolveProfile(ctx context.Context, userUUID string) (enterprises.Profile, bool) {
	if userUUID == "" || p.prefs == nil {
		return enterprises.Profile{}, false
	}

	profile, err := p.prefs.GetProfileByUser(ctx, userUUID)
	if err != nil {
		if !errors.Is(err, enterprises.ErrProfileNotFound) {
			log.Printf("discovery: preference lookup failed for user %s: %v", userUUID, err)
		}
		return enterprises.Profile{}, false
	}

	return profile, true
}
