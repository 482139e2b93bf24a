package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokesapi/src/app/http/docs"
)

// route binds a handler and documents it. The docs endpoint is generated
// from the same table, so the two cannot drift apart.
type route struct {
	handler gin.HandlerFunc
	doc     docs.Operation
}

// jokeRoutes lists the /jokes API.
func (s *Server) jokeRoutes() []route {
	const tag = "Jokes"
	idParam := map[string]docs.Param{
		"id": {Description: "Store-assigned joke id"},
	}

	return []route{
		{s.jokeHandler.List, docs.Operation{
			Method: http.MethodGet, Path: "/jokes/get", Tag: tag,
			Summary: "List all jokes",
			Data:    docs.ArrayOf(docs.Ref("Joke")),
		}},
		{s.jokeHandler.GetByID, docs.Operation{
			Method: http.MethodGet, Path: "/jokes/get/:id", Tag: tag,
			Summary: "Get a joke by id; the result is an array of zero or one jokes",
			Params:  idParam,
			Data:    docs.ArrayOf(docs.Ref("Joke")),
		}},
		{s.jokeHandler.GetByType, docs.Operation{
			Method: http.MethodGet, Path: "/jokes/get/gettype/:type", Tag: tag,
			Summary: "Get one joke of a type",
			Params:  map[string]docs.Param{"type": {Description: "Category code", Type: "integer"}},
			Data:    docs.Nullable("Joke"),
		}},
		{s.jokeHandler.Create, docs.Operation{
			Method: http.MethodPost, Path: "/jokes/post", Tag: tag,
			Summary: "Create a joke",
			Body:    "JokeInput",
			Status:  http.StatusCreated,
			Data:    docs.Ref("Joke"),
		}},
		{s.jokeHandler.Update, docs.Operation{
			Method: http.MethodPut, Path: "/jokes/update/:id", Tag: tag,
			Summary: "Update some fields of a joke",
			Params:  idParam,
			Body:    "JokeInput",
			Data:    docs.Nullable("Joke"),
		}},
		{s.jokeHandler.Delete, docs.Operation{
			Method: http.MethodDelete, Path: "/jokes/delete/:id", Tag: tag,
			Summary: "Delete a joke",
			Params:  idParam,
			Data:    docs.String("Joke deleted"),
		}},
	}
}

// docInfo matches the title and version the API has always published.
var docInfo = docs.Info{
	Title:   "CRUD API with MongoDB",
	Version: "0.1.0",
	Description: "This is a simple CRUD API application made with Gin and Go, " +
		"and documented with OpenAPI",
}
