package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

func newTestMux(t *testing.T) (*http.ServeMux, *CatalogHandler) {
	t.Helper()
	h, err := NewCatalogHandler(catalog.Default(), 16)
	require.NoError(t, err)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux, h
}

func get(t *testing.T, mux http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodePrograms(t *testing.T, rec *httptest.ResponseRecorder) []program.Program {
	t.Helper()
	var out []program.Program
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListPrograms(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := get(t, mux, "/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Len(t, decodePrograms(t, rec), 6)
}

func TestListProgramsByCategory(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := get(t, mux, "/programs?category=Family+Support", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodePrograms(t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "ks-tanf", got[0].ID)

	rec = get(t, mux, "/programs?category=food", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProgram(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := get(t, mux, "/programs/me-mainecare", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p program.Program
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "MaineCare", p.Title)
	assert.Equal(t, "Healthcare", string(p.Category))

	rec = get(t, mux, "/programs/ks-medicaidd", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ks-medicaidd", body.ID)
	assert.Equal(t, []string{"ks-medicaid"}, body.Suggestions)
}

func TestStatePrograms(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := get(t, mux, "/states/ks/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodePrograms(t, rec)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"ks-medicaid", "ks-snap", "ks-tanf"}, []string{got[0].ID, got[1].ID, got[2].ID})

	rec = get(t, mux, "/states/wy/programs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestStatesAndCategories(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := get(t, mux, "/states", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"code":"ks","name":"Kansas","count":3},{"code":"me","name":"Maine","count":3}]`, rec.Body.String())

	rec = get(t, mux, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Healthcare","Food","Family Support"]`, rec.Body.String())

	rec = get(t, mux, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"programs":6}`, rec.Body.String())
}

func TestETagAndCache(t *testing.T) {
	mux, h := newTestMux(t)

	first := get(t, mux, "/states/me/programs", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, 1, h.cache.Len())

	second := get(t, mux, "/states/me/programs", nil)
	assert.Equal(t, etag, second.Header().Get("ETag"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, h.cache.Len())

	notModified := get(t, mux, "/states/me/programs", http.Header{"If-None-Match": {`"stale", ` + etag}})
	assert.Equal(t, http.StatusNotModified, notModified.Code)
	assert.Empty(t, notModified.Body.String())

	other := get(t, mux, "/states/ks/programs", nil)
	assert.NotEqual(t, etag, other.Header().Get("ETag"))
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)
	req := httptest.NewRequest(http.MethodPost, "/programs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
