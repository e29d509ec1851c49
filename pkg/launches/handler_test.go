package launches

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLaunchService struct {
	mock.Mock
}

func (m *mockLaunchService) CreateLaunch(ctx context.Context, input Launch) (Launch, error) {
	args := m.Called(ctx, input)
	launch, _ := args.Get(0).(Launch)
	return launch, args.Error(1)
}

func (m *mockLaunchService) ListLaunchesByStartup(ctx context.Context, startupID int64) ([]Launch, error) {
	args := m.Called(ctx, startupID)
	items, _ := args.Get(0).([]Launch)
	return items, args.Error(1)
}

func (m *mockLaunchService) UpvoteLaunch(ctx context.Context, launchID int64, userUUID string) (Launch, error) {
	args := m.Called(ctx, launchID, userUUID)
	launch, _ := args.Get(0).(Launch)
	return launch, args.Error(1)
}

func setupRouter(service LaunchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLaunchHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestLaunchHandler_CreateLaunch_Success(t *testing.T) {
	svc := new(mockLaunchService)
	r := setupRouter(svc)

	svc.On("CreateLaunch", mock.Anything, mock.MatchedBy(func(input Launch) bool {
		return input.StartupID == 4 && input.Title == "v2 launch"
	})).Return(Launch{ID: 1, StartupID: 4, Title: "v2 launch"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/startups/4/launches", strings.NewReader(`{"title":"v2 launch","tagline":"faster"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestLaunchHandler_CreateLaunch_MissingTitle(t *testing.T) {
	svc := new(mockLaunchService)
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/startups/4/launches", strings.NewReader(`{"tagline":"faster"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateLaunch", mock.Anything, mock.Anything)
}

func TestLaunchHandler_Upvote_Conflict(t *testing.T) {
	svc := new(mockLaunchService)
	r := setupRouter(svc)

	svc.On("UpvoteLaunch", mock.Anything, int64(7), "user-1").Return(Launch{}, ErrAlreadyUpvoted)

	req := httptest.NewRequest(http.MethodPost, "/launches/7/upvote", strings.NewReader(`{"user_uuid":"user-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	svc.AssertExpectations(t)
}

func TestLaunchHandler_Upvote_NotFound(t *testing.T) {
	svc := new(mockLaunchService)
	r := setupRouter(svc)

	svc.On("UpvoteLaunch", mock.Anything, int64(9), "user-2").Return(Launch{}, ErrLaunchNotFound)

	req := httptest.NewRequest(http.MethodPost, "/launches/9/upvote", strings.NewReader(`{"user_uuid":"user-2"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestLaunchHandler_ListLaunches_Success(t *testing.T) {
	svc := new(mockLaunchService)
	r := setupRouter(svc)

	svc.On("ListLaunchesByStartup", mock.Anything, int64(4)).Return([]Launch{{ID: 1, StartupID: 4}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/startups/4/launches", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
