package discovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"launchbridge/pkg/enterprises"
	"launchbridge/pkg/startups"
)

func setupDiscoveryRouter(catalog CatalogSource, prefs PreferenceSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewPipeline(catalog, prefs, nil), nil)
	handler.RegisterRoutes(router)
	return router
}

func TestDiscoverEndpoint_ReturnsTiers(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	router := setupDiscoveryRouter(catalog, prefs)

	catalog.On("Discover", mock.Anything, mock.Anything).Return(catalogFixture(), nil)
	prefs.On("GetProfileByUser", mock.Anything, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11").
		Return(enterprises.Profile{InterestedIndustries: []string{"Fintech"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/startups/discover?user_id=a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Data    Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.True(t, body.Data.Personalized)
	require.Len(t, body.Data.Recommended, 2)
	require.Len(t, body.Data.General, 2)
}

func TestDiscoverEndpoint_InvalidMinScore(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	router := setupDiscoveryRouter(catalog, prefs)

	req := httptest.NewRequest(http.MethodGet, "/startups/discover?min_score=250", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	catalog.AssertNotCalled(t, "Discover", mock.Anything, mock.Anything)
}

func TestDiscoverEndpoint_InvalidUserUUID(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	router := setupDiscoveryRouter(catalog, prefs)

	req := httptest.NewRequest(http.MethodGet, "/startups/discover?user_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	catalog.AssertNotCalled(t, "Discover", mock.Anything, mock.Anything)
	prefs.AssertNotCalled(t, "GetProfileByUser", mock.Anything, mock.Anything)
}

func TestDiscoverEndpoint_BindsQueryFilters(t *testing.T) {
	catalog := new(mockCatalogSource)
	prefs := new(mockPreferenceSource)
	router := setupDiscoveryRouter(catalog, prefs)

	catalog.On("Discover", mock.Anything, mock.MatchedBy(func(f startups.DiscoverFilter) bool {
		return f.Industry != nil && *f.Industry == "Fintech" &&
			f.MinScore != nil && *f.MinScore == 50 &&
			f.Sort == startups.SortRecent
	})).Return([]startups.Startup{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/startups/discover?industry=Fintech&min_score=50&sort=recent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	catalog.AssertExpectations(t)
}
