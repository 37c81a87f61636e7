package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/yomru/ghostchase-server/internal/game"
	"github.com/yomru/ghostchase-server/internal/room"
	"github.com/yomru/ghostchase-server/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	rm *room.Manager
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(rm *room.Manager) *GameplayHandler {
	return &GameplayHandler{rm: rm}
}

type playerInputRequest struct {
	Direction string `json:"direction"`
}

// HandlePlayerInput buffers the controller's intended direction.
func (h *GameplayHandler) HandlePlayerInput(client *ws.Client, msg ws.Message) {
	var req playerInputRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid input data"))
		return
	}

	dir := game.ParseDirection(req.Direction)
	if dir == game.DirNone {
		client.SendMessage(ws.NewErrorMessage("invalid direction: " + req.Direction))
		return
	}

	r := h.rm.FindRoomByClient(client.ID)
	if r == nil {
		return
	}

	if err := r.SetDirection(client.ID, dir); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	slog.Debug("player input", "client", client.ID, "direction", req.Direction)
}

// HandlePauseGame toggles the simulation pause.
func (h *GameplayHandler) HandlePauseGame(client *ws.Client, _ ws.Message) {
	r := h.rm.FindRoomByClient(client.ID)
	if r == nil {
		return
	}

	if err := r.TogglePause(client.ID); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}
}
