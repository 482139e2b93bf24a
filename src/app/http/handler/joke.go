package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"jokesapi/src/app/http/dto"
	"jokesapi/src/app/http/response"
	"jokesapi/src/app/middleware"
	"jokesapi/src/core/domain"
	"jokesapi/src/core/usecase"
)

// DeletedMessage is the data of a successful delete.
const DeletedMessage = "Joke deleted"

// JokeHandler handles the /jokes endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
	policy      response.Policy
}

func NewJokeHandler(jokeService *usecase.JokeService, policy response.Policy) *JokeHandler {
	return &JokeHandler{jokeService: jokeService, policy: policy}
}

// List returns every joke.
// GET /jokes/get
func (h *JokeHandler) List(c *gin.Context) {
	jokes, err := h.jokeService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, dto.FromJokes(jokes))
}

// GetByID returns the matching joke wrapped in an array, or an empty array.
// GET /jokes/get/:id
func (h *JokeHandler) GetByID(c *gin.Context) {
	jokes, err := h.jokeService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, dto.FromJokes(jokes))
}

// GetByType returns one joke of the type, or null.
// GET /jokes/get/gettype/:type
func (h *JokeHandler) GetByType(c *gin.Context) {
	raw := c.Param("type")
	jokeType, err := strconv.Atoi(raw)
	if err != nil {
		h.fail(c, domain.NewValidationError("type",
			fmt.Sprintf("Cast to Number failed for value %q at path \"type\"", raw)))
		return
	}

	joke, err := h.jokeService.GetByType(c.Request.Context(), jokeType)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, dto.FromJokePtr(joke))
}

// Create stores a new joke.
// POST /jokes/post
func (h *JokeHandler) Create(c *gin.Context) {
	var req dto.JokeRequest
	if err := bindJoke(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	joke, err := h.jokeService.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, dto.FromJoke(*joke))
}

// Update replaces the supplied fields and returns the updated joke, or null.
// PUT /jokes/update/:id
func (h *JokeHandler) Update(c *gin.Context) {
	var req dto.JokeRequest
	if err := bindJoke(c, &req); err != nil {
		h.fail(c, err)
		return
	}

	joke, err := h.jokeService.Update(c.Request.Context(), c.Param("id"), req.ToFields())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, dto.FromJokePtr(joke))
}

// Delete removes a joke. A missing id still reports success unless the
// service runs in strict mode.
// DELETE /jokes/delete/:id
func (h *JokeHandler) Delete(c *gin.Context) {
	if err := h.jokeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, DeletedMessage)
}

func (h *JokeHandler) fail(c *gin.Context, err error) {
	h.policy.Fail(c, err, middleware.GetRequestID(c))
}

// bindJoke decodes a JSON or form-encoded body, chosen by Content-Type.
// An empty JSON body binds to an empty request so that the schema, not the
// decoder, reports the missing fields.
func bindJoke(c *gin.Context, req *dto.JokeRequest) error {
	err := c.ShouldBind(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var (
		typeErr *json.UnmarshalTypeError
		numErr  *strconv.NumError
	)
	switch {
	case errors.As(err, &typeErr):
		return domain.NewValidationError(typeErr.Field,
			fmt.Sprintf("Cast to %s failed for value of type %s at path %q", typeErr.Type, typeErr.Value, typeErr.Field))
	case errors.As(err, &numErr):
		// type is the only numeric field
		return domain.NewValidationError("type",
			fmt.Sprintf("Cast to Number failed for value %q at path \"type\"", numErr.Num))
	case c.ContentType() == binding.MIMEJSON:
		return domain.NewValidationError("", "request body is not valid JSON")
	default:
		return domain.NewValidationError("", "request body could not be parsed")
	}
}
