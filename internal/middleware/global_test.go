package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairflip/coinflip/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body []byte) *errs.HTTPError {
	t.Helper()

	var envelope errs.Response
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error
}

func TestErrorHandlerFormatsTaxonomyErrors(t *testing.T) {
	gm := NewGlobalMiddlewares(newTestServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/rng/coin/1", nil), rec)

	gm.ErrorHandler(errs.NewRangeError("flip count 1 is out of range [2, 101)"), c)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	httpErr := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, errs.NameRange, httpErr.Name)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
}

func TestErrorHandlerWrapsUnknownErrorsAs500(t *testing.T) {
	gm := NewGlobalMiddlewares(newTestServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	gm.ErrorHandler(errors.New("pq: connection refused to a database we do not even have"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	httpErr := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, errs.NameInternal, httpErr.Name)
	// Internal detail must not leak into the client-facing message.
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestErrorHandlerConvertsEcho404(t *testing.T) {
	gm := NewGlobalMiddlewares(newTestServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	gm.ErrorHandler(echo.NewHTTPError(http.StatusNotFound), c)

	require.Equal(t, http.StatusNotFound, rec.Code)

	httpErr := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, errs.NameNotFound, httpErr.Name)
}

func TestErrorHandlerSkipsCommittedResponses(t *testing.T) {
	gm := NewGlobalMiddlewares(newTestServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	// Handler already sent a response; the funnel must not write a second.
	require.NoError(t, c.String(http.StatusOK, "already sent"))

	gm.ErrorHandler(errs.NewInternalServerError(), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already sent", rec.Body.String())
}
