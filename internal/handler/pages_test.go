package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexLinksComeFromPathConstants(t *testing.T) {
	h := NewPagesHandler(newTestServer(t))
	c, rec := newTestContext(t, PathRoot)

	require.NoError(t, h.Index(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `href="`+PathCoin+`"`)
	assert.Contains(t, body, `href="`+PathCoin+`/10"`)
	assert.Contains(t, body, "between 2 and 100 flips")
}

func TestCheckHealth(t *testing.T) {
	h := NewHealthHandler(newTestServer(t))
	c, rec := newTestContext(t, PathStatus)

	require.NoError(t, h.CheckHealth(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}
