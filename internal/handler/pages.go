package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/fairflip/coinflip/internal/server"
	"github.com/fairflip/coinflip/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// indexTemplate is the landing page. The endpoint links are injected from
// the route constants rather than written out again here.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>coinflip</title>
</head>
<body>
  <h1>coinflip</h1>
  <p>A small randomness service. Flip one coin, or flip many.</p>
  <ul>
    <li><a href="{{.CoinPath}}">{{.CoinPath}}</a>: a single coin flip</li>
    <li><a href="{{.ExamplePath}}">{{.ExamplePath}}</a>: ten coin flips at once</li>
  </ul>
  <p>The multi-flip endpoint accepts between {{.MinFlips}} and {{.MaxFlips}} flips.</p>
</body>
</html>
`))

// indexPage carries the values rendered into indexTemplate.
type indexPage struct {
	CoinPath    string
	ExamplePath string
	MinFlips    int
	MaxFlips    int
}

// PagesHandler serves the HTML landing page.
type PagesHandler struct {
	Handler
}

// NewPagesHandler constructs a PagesHandler.
func NewPagesHandler(s *server.Server) *PagesHandler {
	return &PagesHandler{Handler: NewHandler(s)}
}

// Index handles GET / and GET /index: a static HTML document linking to
// the single-flip endpoint and an example multi-flip endpoint.
func (h *PagesHandler) Index(c echo.Context) error {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexPage{
		CoinPath:    PathCoin,
		ExamplePath: PathCoin + "/10",
		MinFlips:    validation.MinFlips,
		MaxFlips:    validation.MaxFlips - 1,
	})
	if err != nil {
		return errors.Wrap(err, "rendering index page")
	}

	return c.HTML(http.StatusOK, buf.String())
}
