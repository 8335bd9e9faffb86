package server

import (
	"log/slog"
	"net/http"

	"govprograms/internal/gateway/handler"
	"govprograms/internal/gateway/handler/rpc"
	"govprograms/internal/gateway/handler/ws"
	"govprograms/internal/gateway/middleware"
)

func NewMux(
	catalogHandler *handler.CatalogHandler,
	rpcHandler *rpc.CatalogHandler,
	wsHandler *ws.Handler,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// REST
	catalogHandler.Register(mux)

	// RPC
	mux.Handle(rpc.NewCatalogServiceHandler(rpcHandler))

	// WebSocket
	mux.HandleFunc("GET /ws/catalog", wsHandler.HandleCatalogWS)

	return middleware.Logging(logger, middleware.CORS(mux))
}
