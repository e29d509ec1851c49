package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"launchbridge/pkg/enterprises"
	"launchbridge/pkg/startups"
)

type mockCatalogSource struct {
	mock.Mock
}

func (m *mockCatalogSource) Discover(ctx context.Context, filter startups.DiscoverFilter) ([]startups.Startup, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]startups.Startup)
	return items, args.Error(1)
}

type mockPreferenceSource struct {
	mock.Mock
}

func (m *mockPreferenceSource) GetProfileByUser(ctx context.Context, userUUID string) (enterprises.Profile, error) {
	args := m.Called(ctx, userUUID)
	p, _ := args.Get(0).(enterprises.Profile)
	return p, args.Error(1)
}

func catalogFixture() []startups.Startup {
	return []startups.Startup{
		{ID: 1, Name: "PayFlow", Industry: "Fintech", ARRRange: "5-25 Cr", CredibilityScore: 80},
		{ID: 2, Name: "ShipFast", Industry: "E-commerce", ARRRange: "0-5 Cr", CredibilityScore: 70},
		{ID: 3, Name: "LedgerIQ", Industry: "Fintech", ARRRange: "0-5 Cr", CredibilityScore: 60},
		{ID: 4, Name: "MedGraph", Industry: "Healthtech", ARRRange: "5-25 Cr", CredibilityScore: 50},
	}
}

func TestPipeline_Discover_InvalidCriteriaRejectedBeforeCatalog(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	bad := 150
	_, err := pipeline.Discover(context.Background(), "", Criteria{MinScore: &bad})

	require.ErrorIs(t, err, ErrInvalidCriteria)
	catalog.AssertNotCalled(t, "Discover", mock.Anything, mock.Anything)
}

func TestPipeline_Discover_CatalogErrorPropagates(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	boom := errors.New("catalog unavailable")
	catalog.On("Discover", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := pipeline.Discover(context.Background(), "", Criteria{})

	require.ErrorIs(t, err, boom)
}

func TestPipeline_Discover_AnonymousIsUnpersonalized(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)

	result, err := pipeline.Discover(context.Background(), "", Criteria{})

	require.NoError(t, err)
	require.False(t, result.Personalized)
	require.Empty(t, result.Recommended)
	require.Len(t, result.General, 4)
	prefs.AssertNotCalled(t, "GetProfileByUser", mock.Anything, mock.Anything)
}

func TestPipeline_Discover_MissingProfileFallsBackToGeneral(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)
	prefs.On("GetProfileByUser", mock.Anything, "ent-1").Return(enterprises.Profile{}, enterprises.ErrProfileNotFound)

	result, err := pipeline.Discover(context.Background(), "ent-1", Criteria{})

	require.NoError(t, err)
	require.False(t, result.Personalized)
	require.Len(t, result.General, 4)
}

func TestPipeline_Discover_PreferenceLookupFailureDegrades(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)
	prefs.On("GetProfileByUser", mock.Anything, "ent-1").Return(enterprises.Profile{}, errors.New("timeout"))

	result, err := pipeline.Discover(context.Background(), "ent-1", Criteria{})

	require.NoError(t, err)
	require.False(t, result.Personalized)
	require.Len(t, result.General, 4)
}

func TestPipeline_Discover_PartitionsByThreshold(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)
	prefs.On("GetProfileByUser", mock.Anything, "ent-1").Return(enterprises.Profile{
		InterestedIndustries: []string{"Fintech"},
		PreferredARRRanges:   []string{"5-25 Cr"},
	}, nil)

	result, err := pipeline.Discover(context.Background(), "ent-1", Criteria{})

	require.NoError(t, err)
	require.True(t, result.Personalized)

	// PayFlow: industry + ARR (weight 3); LedgerIQ: industry only (2);
	// MedGraph: ARR only (1) stays general; ShipFast: nothing (0).
	require.Len(t, result.Recommended, 2)
	require.Equal(t, int64(1), result.Recommended[0].ID)
	require.Equal(t, 3, result.Recommended[0].MatchWeight)
	require.Equal(t, []string{"Industry match", "ARR range match"}, result.Recommended[0].MatchReasons)
	require.Equal(t, int64(3), result.Recommended[1].ID)
	require.Equal(t, 2, result.Recommended[1].MatchWeight)

	require.Len(t, result.General, 2)
	require.Equal(t, int64(2), result.General[0].ID)
	require.Equal(t, int64(4), result.General[1].ID)
}

func TestPipeline_Discover_TiersAreDisjoint(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)
	prefs.On("GetProfileByUser", mock.Anything, "ent-1").Return(enterprises.Profile{
		InterestedIndustries: []string{"Fintech", "Healthtech"},
	}, nil)

	result, err := pipeline.Discover(context.Background(), "ent-1", Criteria{})
	require.NoError(t, err)

	seen := make(map[int64]bool)
	for _, r := range result.Recommended {
		seen[r.ID] = true
	}
	for _, g := range result.General {
		require.False(t, seen[g.ID], "startup %d appears in both tiers", g.ID)
		seen[g.ID] = true
	}
	require.Len(t, seen, 4)
}

func TestPipeline_Discover_RecommendedSortedByWeightThenCredibility(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	// all Fintech, varying ARR overlap and credibility
	catalog.On("Discover", mock.Anything, mock.Anything).Return([]startups.Startup{
		{ID: 1, Industry: "Fintech", ARRRange: "0-5 Cr", CredibilityScore: 40},
		{ID: 2, Industry: "Fintech", ARRRange: "5-25 Cr", CredibilityScore: 30},
		{ID: 3, Industry: "Fintech", ARRRange: "0-5 Cr", CredibilityScore: 90},
	}, nil)
	prefs.On("GetProfileByUser", mock.Anything, "ent-1").Return(enterprises.Profile{
		InterestedIndustries: []string{"Fintech"},
		PreferredARRRanges:   []string{"5-25 Cr"},
	}, nil)

	result, err := pipeline.Discover(context.Background(), "ent-1", Criteria{})
	require.NoError(t, err)

	// weight 3 first even with lower credibility, then weight 2 by credibility
	require.Equal(t, []int64{2, 3, 1}, []int64{
		result.Recommended[0].ID,
		result.Recommended[1].ID,
		result.Recommended[2].ID,
	})
}

func TestPipeline_Discover_InMemoryFilterGuardsLooseCatalog(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	pipeline := NewPipeline(catalog, prefs, nil)

	industry := "Fintech"
	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)

	result, err := pipeline.Discover(context.Background(), "", Criteria{Industry: &industry})

	require.NoError(t, err)
	require.Len(t, result.General, 2)
	for _, s := range result.General {
		require.Equal(t, "Fintech", s.Industry)
	}
}
