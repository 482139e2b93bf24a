package docs

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

var uiPage = template.Must(template.New("ui").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: "#swagger-ui", deepLinking: true });
  </script>
</body>
</html>
`))

// Handler serves a built document.
type Handler struct {
	title string
	json  []byte
	yaml  []byte
}

// NewHandler renders the JSON and YAML forms once up front.
func NewHandler(doc *openapi3.T) (*Handler, error) {
	js, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render openapi json: %w", err)
	}
	ym, err := toYAML(js)
	if err != nil {
		return nil, fmt.Errorf("failed to render openapi yaml: %w", err)
	}
	return &Handler{title: doc.Info.Title, json: js, yaml: ym}, nil
}

// toYAML re-encodes a JSON document as block-style YAML.
func toYAML(js []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(js, &node); err != nil {
		return nil, err
	}
	resetStyle(&node)
	return yaml.Marshal(&node)
}

// resetStyle drops the flow and quoting styles the JSON input carried.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}

// JSON serves the document as JSON.
// GET /docs/openapi.json
func (h *Handler) JSON(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.json)
}

// YAML serves the document as YAML.
// GET /docs/openapi.yaml
func (h *Handler) YAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", h.yaml)
}

// UI serves a Swagger UI page pointed at the JSON document.
// GET /docs
func (h *Handler) UI(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = uiPage.Execute(c.Writer, struct {
		Title   string
		SpecURL string
	}{
		Title:   h.title,
		SpecURL: "/docs/openapi.json",
	})
}
