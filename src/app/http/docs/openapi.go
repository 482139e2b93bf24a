// Package docs builds the OpenAPI document served under /docs from the
// same route table the server registers handlers with.
package docs

import (
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the OpenAPI version of the generated document.
const Version = "3.0.3"

// bodyMediaTypes are the encodings the joke endpoints accept.
var bodyMediaTypes = []string{"application/json", "application/x-www-form-urlencoded"}

// Info describes the API in the generated document.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Operation documents one route.
type Operation struct {
	Method  string
	Path    string // gin syntax, e.g. /jokes/get/:id
	Summary string
	Tag     string

	// Params describes path parameters by name. Undescribed ones are
	// documented as strings.
	Params map[string]Param

	// Body names the request body schema, empty for none.
	Body string

	// Status and Data describe the success response.
	Status int
	Data   *openapi3.SchemaRef
}

// Param describes a path parameter.
type Param struct {
	Description string
	Type        string
}

// Ref returns a reference to a component schema.
func Ref(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

// ArrayOf returns an array schema of items.
func ArrayOf(items *openapi3.SchemaRef) *openapi3.SchemaRef {
	s := openapi3.NewArraySchema()
	s.Items = items
	return s.NewRef()
}

// Nullable returns a nullable wrapper around a component reference.
// OpenAPI 3.0 ignores siblings of $ref, hence the allOf.
func Nullable(name string) *openapi3.SchemaRef {
	return (&openapi3.Schema{
		Description: "null when nothing matched",
		Nullable:    true,
		AllOf:       openapi3.SchemaRefs{Ref(name)},
	}).NewRef()
}

// String returns a string schema with an example.
func String(example string) *openapi3.SchemaRef {
	s := openapi3.NewStringSchema()
	s.Example = example
	return s.NewRef()
}

var ginParam = regexp.MustCompile(`[:*]([A-Za-z0-9_]+)`)

// Build assembles the document from the route table.
func Build(info Info, serverURL string, ops []Operation) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: componentSchemas()},
	}
	if serverURL != "" {
		doc.Servers = openapi3.Servers{{URL: serverURL}}
	}

	tags := map[string]bool{}
	for _, op := range ops {
		path := ginParam.ReplaceAllString(op.Path, "{$1}")
		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		item.SetOperation(strings.ToUpper(op.Method), buildOperation(op))
		if op.Tag != "" {
			tags[op.Tag] = true
		}
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: name})
	}
	return doc
}

func buildOperation(op Operation) *openapi3.Operation {
	out := openapi3.NewOperation()
	out.Summary = op.Summary
	out.OperationID = operationID(op.Method, op.Path)
	if op.Tag != "" {
		out.Tags = []string{op.Tag}
	}

	for _, m := range ginParam.FindAllStringSubmatch(op.Path, -1) {
		name := m[1]
		p := op.Params[name]
		schema := openapi3.NewStringSchema()
		if p.Type == "integer" {
			schema = openapi3.NewIntegerSchema()
		}
		out.AddParameter(openapi3.NewPathParameter(name).
			WithDescription(p.Description).
			WithSchema(schema))
	}

	if op.Body != "" {
		out.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithContent(openapi3.NewContentWithSchemaRef(Ref(op.Body), bodyMediaTypes)),
		}
	}

	status := op.Status
	if status == 0 {
		status = http.StatusOK
	}
	success := openapi3.NewObjectSchema().
		WithProperty("success", withExample(openapi3.NewBoolSchema(), true))
	success.Required = []string{"success", "data"}
	if op.Data != nil {
		success.WithPropertyRef("data", op.Data)
	}

	out.Responses = &openapi3.Responses{}
	out.Responses.Set(strconv.Itoa(status), &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(http.StatusText(status)).
			WithJSONSchema(success),
	})
	out.Responses.Set(strconv.Itoa(http.StatusConflict), &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription("The store rejected or failed the operation").
			WithJSONSchemaRef(Ref("Failure")),
	})
	return out
}

// operationID derives a stable id such as getJokesGetById.
func operationID(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if seg[0] == ':' || seg[0] == '*' {
			b.WriteString("By")
			seg = seg[1:]
		}
		b.WriteString(strings.ToUpper(seg[:1]) + seg[1:])
	}
	return b.String()
}

func withExample(s *openapi3.Schema, example any) *openapi3.Schema {
	s.Example = example
	return s
}

func withDescription(s *openapi3.Schema, description string) *openapi3.Schema {
	s.Description = description
	return s
}

func componentSchemas() openapi3.Schemas {
	const (
		exampleSetup     = "Why did the gopher cross the road?"
		examplePunchline = "To get to the other goroutine."
	)

	joke := openapi3.NewObjectSchema().
		WithProperty("_id", withExample(withDescription(openapi3.NewStringSchema(), "Store-assigned identifier"), "65a1b2c3d4e5f60718293a4b")).
		WithProperty("type", withExample(withDescription(openapi3.NewIntegerSchema(), "Category code"), 3)).
		WithProperty("setup", withExample(openapi3.NewStringSchema(), exampleSetup)).
		WithProperty("punchline", withExample(openapi3.NewStringSchema(), examplePunchline)).
		WithProperty("__v", withExample(withDescription(openapi3.NewIntegerSchema(), "Revision counter maintained by the store"), 0))
	joke.Required = []string{"_id", "type", "setup", "punchline"}

	input := openapi3.NewObjectSchema().
		WithProperty("type", withExample(openapi3.NewIntegerSchema(), 3)).
		WithProperty("setup", withExample(openapi3.NewStringSchema(), exampleSetup)).
		WithProperty("punchline", withExample(openapi3.NewStringSchema(), examplePunchline))
	input.Description = "All fields are required on create; update accepts any subset."
	input.Required = []string{"type", "setup", "punchline"}

	errBody := openapi3.NewObjectSchema().
		WithProperty("kind", withExample(openapi3.NewStringSchema(), "ValidationError")).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("field", openapi3.NewStringSchema()).
		WithProperty("request_id", openapi3.NewStringSchema())
	errBody.Required = []string{"kind", "message"}

	failure := openapi3.NewObjectSchema().
		WithProperty("success", withExample(openapi3.NewBoolSchema(), false)).
		WithProperty("data", openapi3.NewArraySchema().WithItems(&openapi3.Schema{})).
		WithPropertyRef("error", Ref("Error"))
	failure.Required = []string{"success", "data", "error"}

	return openapi3.Schemas{
		"Joke":      joke.NewRef(),
		"JokeInput": input.NewRef(),
		"Error":     errBody.NewRef(),
		"Failure":   failure.NewRef(),
	}
}
