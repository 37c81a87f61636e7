package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/yomru/ghostchase-server/internal/config"
	"github.com/yomru/ghostchase-server/internal/handler"
	"github.com/yomru/ghostchase-server/internal/room"
	"github.com/yomru/ghostchase-server/internal/store"
	"github.com/yomru/ghostchase-server/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	scores := openScoreStore(cfg)
	defer scores.Close()

	hub := ws.NewHub()
	rm := room.NewManager(scores)
	router := handler.NewRouter(rm)

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	go hub.Run()

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		handleHealth(hub, rm, w, r)
	})
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(hub, w, r)
	})

	addr := cfg.Addr()
	slog.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// openScoreStore connects to Postgres when configured, falling back to the
// in-memory store so the server still runs without a database.
func openScoreStore(cfg *config.Config) store.ScoreStore {
	if cfg.DatabaseURL == "" {
		slog.Info("no database configured, using in-memory score store")
		return store.NewMemoryStore()
	}
	pg, err := store.NewPostgresStore(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Warn("database unavailable, using in-memory score store", "error", err)
		return store.NewMemoryStore()
	}
	return pg
}

// handleHealth reports liveness plus a couple of cheap gauges.
func handleHealth(hub *ws.Hub, rm *room.Manager, w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","clients":%d,"rooms":%d}`, hub.ClientCount(), rm.RoomCount())
}

func handleWebSocket(hub *ws.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(hub, conn)
	hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
