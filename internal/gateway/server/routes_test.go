package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govprograms/internal/catalog"
	"govprograms/internal/gateway/handler"
	"govprograms/internal/gateway/handler/rpc"
	"govprograms/internal/gateway/handler/ws"
)

func TestMuxServesEverySurface(t *testing.T) {
	c := catalog.Default()
	catalogHandler, err := handler.NewCatalogHandler(c, 8)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(NewMux(catalogHandler, rpc.NewCatalogHandler(c), ws.NewHandler(c), logger))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/programs/ks-tanf")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, err = srv.Client().Post(srv.URL+rpc.GetProgramProcedure, "application/json", strings.NewReader(`{"id":"ks-tanf"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"id":"ks-tanf"`)

	resp, err = srv.Client().Get(srv.URL + "/nowhere")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
