// Package ws serves catalog queries over a long-lived WebSocket so a UI can
// issue many lookups without a request per lookup.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = (wsPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

const (
	OpAll        = "all"
	OpByID       = "byId"
	OpByState    = "byState"
	OpByCategory = "byCategory"
)

type inbound struct {
	Type  string `json:"type"`
	Op    string `json:"op"`
	Arg   string `json:"arg,omitempty"`
	RefID string `json:"refId,omitempty"`
}

type outbound struct {
	Type        string            `json:"type"`
	Op          string            `json:"op,omitempty"`
	RefID       string            `json:"refId,omitempty"`
	Programs    []program.Program `json:"programs,omitempty"`
	Code        string            `json:"code,omitempty"`
	Message     string            `json:"message,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// MarshalJSON always writes programs on result frames, as [] when nothing
// matched, and never on ready or error frames.
func (o outbound) MarshalJSON() ([]byte, error) {
	type plain outbound
	if o.Type != "result" {
		o.Programs = nil
		return json.Marshal(plain(o))
	}
	programs := o.Programs
	if programs == nil {
		programs = []program.Program{}
	}
	return json.Marshal(struct {
		plain
		Programs []program.Program `json:"programs"`
	}{plain(o), programs})
}

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) HandleCatalogWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
		slog.WarnContext(ctx, "catalog ws set read deadline failed", "err", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	writeCh := make(chan outbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(wsPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
					cancel()
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					cancel()
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
					cancel()
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	push(ctx, writeCh, outbound{Type: "ready"})
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.DebugContext(ctx, "catalog ws read ended", "err", err)
			}
			break
		}
		if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
			break
		}
		var in inbound
		if err := json.Unmarshal(payload, &in); err != nil {
			if !push(ctx, writeCh, outbound{Type: "error", Code: "invalid_argument", Message: "malformed message: " + err.Error()}) {
				break
			}
			continue
		}
		if !push(ctx, writeCh, h.answer(in)) {
			break
		}
	}
	cancel()
	<-writerDone
}

func (h *Handler) answer(in inbound) outbound {
	if strings.TrimSpace(in.Type) != "query" {
		return outbound{Type: "error", RefID: in.RefID, Code: "invalid_argument", Message: "unsupported message type: " + in.Type}
	}
	out := outbound{Type: "result", Op: in.Op, RefID: in.RefID}
	switch in.Op {
	case OpAll:
		out.Programs = h.catalog.All()
	case OpByState:
		out.Programs = h.catalog.ProgramsByState(in.Arg)
	case OpByCategory:
		out.Programs = h.catalog.ProgramsByCategory(program.Category(in.Arg))
	case OpByID:
		p, err := h.catalog.ProgramByID(in.Arg)
		if err != nil {
			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				return outbound{Type: "error", Op: in.Op, RefID: in.RefID, Code: "not_found", Message: err.Error(), Suggestions: nf.Suggestions}
			}
			return outbound{Type: "error", Op: in.Op, RefID: in.RefID, Code: "internal", Message: err.Error()}
		}
		out.Programs = []program.Program{p}
	default:
		return outbound{Type: "error", Op: in.Op, RefID: in.RefID, Code: "invalid_argument", Message: "unknown op: " + in.Op}
	}
	return out
}

func push(ctx context.Context, ch chan<- outbound, out outbound) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- out:
		return true
	}
}
