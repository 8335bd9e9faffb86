package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

// CatalogHandler serves the read-only REST view of the catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
	cache   *responseCache
}

func NewCatalogHandler(c *catalog.Catalog, cacheSize int) (*CatalogHandler, error) {
	cache, err := newResponseCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &CatalogHandler{catalog: c, cache: cache}, nil
}

func (h *CatalogHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /programs", h.HandleListPrograms)
	mux.HandleFunc("GET /programs/{id}", h.HandleGetProgram)
	mux.HandleFunc("GET /states", h.HandleListStates)
	mux.HandleFunc("GET /states/{code}/programs", h.HandleStatePrograms)
	mux.HandleFunc("GET /categories", h.HandleListCategories)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

// HandleListPrograms returns every program, or the programs of one category
// when ?category= is present.
func (h *CatalogHandler) HandleListPrograms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("category") {
		category := program.Category(query.Get("category"))
		h.serve(w, r, func() any { return h.catalog.ProgramsByCategory(category) })
		return
	}
	h.serve(w, r, func() any { return h.catalog.All() })
}

func (h *CatalogHandler) HandleGetProgram(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := h.catalog.ProgramByID(id)
	if err != nil {
		var nf *catalog.NotFoundError
		if errors.As(err, &nf) {
			writeJSON(w, http.StatusNotFound, errorBody{
				Error:       "program not found",
				ID:          nf.ID,
				Suggestions: nf.Suggestions,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	h.serve(w, r, func() any { return p })
}

func (h *CatalogHandler) HandleListStates(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() any { return h.catalog.States() })
}

// HandleStatePrograms answers 200 with [] for states that are not onboarded.
func (h *CatalogHandler) HandleStatePrograms(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.PathValue("code"))
	h.serve(w, r, func() any { return h.catalog.ProgramsByState(code) })
}

func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func() any { return h.catalog.Categories() })
}

func (h *CatalogHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"programs": h.catalog.Len(),
	})
}

func (h *CatalogHandler) serve(w http.ResponseWriter, r *http.Request, build func() any) {
	resp, err := h.cache.get(cacheKey(r), build)
	if err != nil {
		slog.ErrorContext(r.Context(), "encode response failed", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "encode response"})
		return
	}
	serveCached(w, r, resp)
}
