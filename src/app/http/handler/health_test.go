package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jokesapi/src/core/ports"
	"jokesapi/src/core/usecase"
	"jokesapi/src/infra/logger"
)

type pinger struct{ err error }

func (p pinger) Health(context.Context) error { return p.err }

func healthRouter(err error) *gin.Engine {
	h := NewHealthHandler(usecase.NewHealthService(logger.Discard(), map[string]ports.ExternalService{
		"store": pinger{err: err},
	}))
	e := gin.New()
	e.GET("/health", h.Health)
	e.GET("/health/detailed", h.DetailedHealth)
	return e
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	healthRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDetailedHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	healthRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","components":{"store":{"status":"healthy"}}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	healthRouter(errors.New("down")).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded"`)
}
