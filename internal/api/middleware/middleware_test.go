package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ftwallet/internal/config"
	"ftwallet/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{CORS: config.CORSConfig{AllowOrigins: []string{"https://app.example.com"}}}
	router.Use(CORS(cfg))
	router.GET("/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ShortCircuitsPreflightRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{CORS: config.CORSConfig{AllowOrigins: []string{"*"}}}
	router.Use(CORS(cfg))
	router.GET("/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/balance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit_AllowsRequestsWithinLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerMinute: 2, Window: time.Minute}}
	router.Use(RateLimit(cfg))
	router.GET("/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_RejectsOnceLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerMinute: 1, Window: time.Minute}}
	router.Use(RateLimit(cfg))
	router.GET("/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRequest(http.MethodGet, "/balance", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, first)
	assert.Equal(t, http.StatusOK, rec1.Code)

	second := httptest.NewRequest(http.MethodGet, "/balance", nil)
	second.RemoteAddr = "10.0.0.1:5000"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, second)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
}

func TestRateLimit_TracksClientsIndependently(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerMinute: 1, Window: time.Minute}}
	router.Use(RateLimit(cfg))
	router.GET("/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRequest(http.MethodGet, "/balance", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, first)
	assert.Equal(t, http.StatusOK, rec1.Code)

	other := httptest.NewRequest(http.MethodGet, "/balance", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, other)
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestPrometheus_RecordsRequestCountLabeledByReplica(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Prometheus("primary"))
	router.GET("/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/balance", "200", "primary"))

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/balance", "200", "primary"))
	assert.Equal(t, before+1, after)
}
