// Package serve exposes a finished run to external chart frontends: the
// full aggregate as JSON, and a websocket replay that pushes one tick per
// frame. Read-only; parameters cannot be changed through it.
package serve

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"glosten_go/internal/domain"
)

// Frame is one tick of the aggregated series pushed to chart clients.
type Frame struct {
	Tick        int     `json:"t"`
	Spread      float64 `json:"spread"`
	Belief      float64 `json:"delta"`
	Fundamental float64 `json:"fundamental"`
	Ask         float64 `json:"ask"`
	Bid         float64 `json:"bid"`
}

// Server replays a finished aggregate to websocket clients.
type Server struct {
	agg      *domain.AggregateHistory
	interval time.Duration
	upgrader websocket.Upgrader
}

// NewServer creates a server over a finished aggregate. frameInterval is
// the pause between pushed ticks.
func NewServer(agg *domain.AggregateHistory, frameInterval time.Duration) *Server {
	return &Server{
		agg:      agg,
		interval: frameInterval,
		upgrader: websocket.Upgrader{
			// Local analysis tool serving read-only data.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP routes: /series for the full dump, /ws for the
// tick-by-tick replay.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/series", s.handleSeries)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.agg); err != nil {
		slog.Error("Failed to encode series", slog.Any("error", err))
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	slog.Info("Chart client connected", slog.String("remote", conn.RemoteAddr().String()))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for _, row := range s.agg.Rows() {
		frame := Frame{
			Tick:        row.Tick,
			Spread:      row.Spread,
			Belief:      row.Belief,
			Fundamental: row.Fundamental,
			Ask:         row.Ask,
			Bid:         row.Bid,
		}
		if err := conn.WriteJSON(frame); err != nil {
			// Client went away; nothing to recover.
			return
		}
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Serving aggregate series", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
