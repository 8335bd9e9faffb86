package rpc

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

const (
	CatalogServiceName = "govprograms.catalog.v1.CatalogService"

	ListProgramsProcedure = "/" + CatalogServiceName + "/ListPrograms"
	GetProgramProcedure   = "/" + CatalogServiceName + "/GetProgram"
	ListStatesProcedure   = "/" + CatalogServiceName + "/ListStates"
)

// ListProgramsRequest filters by state or category; with neither set the
// whole catalog is returned. Setting both is rejected.
type ListProgramsRequest struct {
	State    string `json:"state,omitempty"`
	Category string `json:"category,omitempty"`
}

type ListProgramsResponse struct {
	Programs []program.Program `json:"programs"`
}

type GetProgramRequest struct {
	ID string `json:"id"`
}

type GetProgramResponse struct {
	Program program.Program `json:"program"`
}

type ListStatesRequest struct{}

type ListStatesResponse struct {
	States []catalog.StateInfo `json:"states"`
}

// CatalogHandler implements CatalogService.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// NewCatalogServiceHandler builds the HTTP handler and its mount path, the
// same shape generated Connect code returns.
func NewCatalogServiceHandler(h *CatalogHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithCodec(jsonCodec{name: jsonCharsetUTF8}),
	}, opts...)

	listPrograms := connect.NewUnaryHandler(ListProgramsProcedure, h.ListPrograms, opts...)
	getProgram := connect.NewUnaryHandler(GetProgramProcedure, h.GetProgram, opts...)
	listStates := connect.NewUnaryHandler(ListStatesProcedure, h.ListStates, opts...)

	return "/" + CatalogServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ListProgramsProcedure:
			listPrograms.ServeHTTP(w, r)
		case GetProgramProcedure:
			getProgram.ServeHTTP(w, r)
		case ListStatesProcedure:
			listStates.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func (h *CatalogHandler) ListPrograms(_ context.Context, req *connect.Request[ListProgramsRequest]) (*connect.Response[ListProgramsResponse], error) {
	state := strings.TrimSpace(req.Msg.State)
	category := req.Msg.Category
	var programs []program.Program
	switch {
	case state != "" && category != "":
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("state and category filters are mutually exclusive"))
	case state != "":
		programs = h.catalog.ProgramsByState(state)
	case category != "":
		programs = h.catalog.ProgramsByCategory(program.Category(category))
	default:
		programs = h.catalog.All()
	}
	return connect.NewResponse(&ListProgramsResponse{Programs: programs}), nil
}

func (h *CatalogHandler) GetProgram(_ context.Context, req *connect.Request[GetProgramRequest]) (*connect.Response[GetProgramResponse], error) {
	if strings.TrimSpace(req.Msg.ID) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}
	p, err := h.catalog.ProgramByID(req.Msg.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&GetProgramResponse{Program: p}), nil
}

func (h *CatalogHandler) ListStates(_ context.Context, _ *connect.Request[ListStatesRequest]) (*connect.Response[ListStatesResponse], error) {
	return connect.NewResponse(&ListStatesResponse{States: h.catalog.States()}), nil
}
