package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jokesapi/src/core/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPolicyStatus(t *testing.T) {
	errs := []error{
		domain.NewValidationError("setup", "Path `setup` is required."),
		domain.NewNotFoundError("joke"),
		domain.NewUnavailableError(errors.New("dial tcp")),
		errors.New("raw"),
	}

	legacy := Policy{}
	for _, err := range errs {
		assert.Equal(t, http.StatusConflict, legacy.Status(err))
	}

	typed := Policy{Typed: true}
	assert.Equal(t, http.StatusBadRequest, typed.Status(errs[0]))
	assert.Equal(t, http.StatusNotFound, typed.Status(errs[1]))
	assert.Equal(t, http.StatusServiceUnavailable, typed.Status(errs[2]))
	assert.Equal(t, http.StatusInternalServerError, typed.Status(errs[3]))
}

func TestFailEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Policy{}.Fail(c, domain.NewValidationError("setup", "Path `setup` is required."), "req-1")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"data": [],
		"error": {
			"kind": "ValidationError",
			"message": "invalid input: Path `+"`setup`"+` is required. (field: setup)",
			"field": "setup",
			"request_id": "req-1"
		}
	}`, rec.Body.String())
}

func TestFailureHidesCause(t *testing.T) {
	env := Failure(domain.NewStoreError("find", errors.New("secret driver detail")), "")

	assert.False(t, env.Success)
	assert.Equal(t, "store error: find failed", env.Error.Message)
	assert.NotContains(t, env.Error.Message, "secret")
}

func TestOKAndCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	OK(c, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":null}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	Created(c, "x")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":"x"}`, rec.Body.String())
}
