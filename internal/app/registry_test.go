package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOpsRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := gin.New()
	registerOpsRoutes(r, db, metricsHandler)
	return r, mock
}

func get(r *gin.Engine, path, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestOpsRoutes_Healthz(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, mock := setupOpsRouter(t)
		mock.ExpectPing()

		assert.Equal(t, http.StatusOK, get(r, "/healthz", "10.0.0.1:1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		r, mock := setupOpsRouter(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		assert.Equal(t, http.StatusServiceUnavailable, get(r, "/healthz", "10.0.0.1:1"))
	})
}

func TestOpsRoutes_RateLimitedPerIP(t *testing.T) {
	r, _ := setupOpsRouter(t)

	for i := 0; i < opsRateBurst; i++ {
		require.Equal(t, http.StatusOK, get(r, "/metrics", "10.0.0.1:1"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/metrics", "10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, get(r, "/metrics", "10.0.0.2:1"))
}
