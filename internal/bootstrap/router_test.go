package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBuildRouter_HealthNotRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// limiter lives on the route groups, not the root engine, so repeated
	// health probes from one address never trip it
	r := BuildRouter(RouterDeps{
		ServiceName: "company-api-backend",
		Version:     "test",
		RateRPS:     0.001,
		RateBurst:   1,
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestBuildRouter_AccountRoutesRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := BuildRouter(RouterDeps{
		ServiceName: "company-api-backend",
		Version:     "test",
		WebAPIKey:   "test-key",
		RateRPS:     0.001,
		RateBurst:   1,
	})

	post := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create_user", nil))
		return w.Code
	}

	require.Equal(t, http.StatusUnprocessableEntity, post())
	require.Equal(t, http.StatusTooManyRequests, post())
}
