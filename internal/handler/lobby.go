package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/yomru/ghostchase-server/internal/room"
	"github.com/yomru/ghostchase-server/internal/score"
	"github.com/yomru/ghostchase-server/internal/ws"
)

const leaderboardLimit = 10
const leaderboardTimeout = 5 * time.Second

// LobbyHandler handles lobby-related messages.
type LobbyHandler struct {
	rm *room.Manager
}

// NewLobbyHandler creates a new lobby handler.
func NewLobbyHandler(rm *room.Manager) *LobbyHandler {
	return &LobbyHandler{rm: rm}
}

type createGameRequest struct {
	Nickname string `json:"nickname"`
}

type joinResponse struct {
	Code       string `json:"code"`
	MemberID   string `json:"member_id"`
	Controller bool   `json:"controller"`
}

// HandleCreateGame creates a room with the requesting client as controller.
func (h *LobbyHandler) HandleCreateGame(client *ws.Client, msg ws.Message) {
	var req createGameRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Nickname == "" {
		client.SendMessage(ws.NewErrorMessage("nickname is required"))
		return
	}

	r := h.rm.CreateRoom()
	m, err := r.Join(client, req.Nickname)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeCreateGame, joinResponse{
		Code:       r.Code,
		MemberID:   m.ID,
		Controller: true,
	})
	client.SendMessage(resp)

	slog.Info("room created by player", "player", req.Nickname, "room", r.Code)
}

type joinGameRequest struct {
	Code     string `json:"code"`
	Nickname string `json:"nickname"`
}

// HandleJoinGame joins an existing room, usually as a spectator.
func (h *LobbyHandler) HandleJoinGame(client *ws.Client, msg ws.Message) {
	var req joinGameRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" || req.Nickname == "" {
		client.SendMessage(ws.NewErrorMessage("code and nickname are required"))
		return
	}

	r := h.rm.GetRoom(req.Code)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("room not found"))
		return
	}

	m, err := r.Join(client, req.Nickname)
	if err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeJoinGame, joinResponse{
		Code:       r.Code,
		MemberID:   m.ID,
		Controller: r.IsController(client.ID),
	})
	client.SendMessage(resp)

	h.broadcastRoomInfo(r)

	slog.Info("player joined room", "player", req.Nickname, "room", r.Code)
}

// HandleLeaveGame removes the client from its room.
func (h *LobbyHandler) HandleLeaveGame(client *ws.Client, _ ws.Message) {
	r := h.rm.FindRoomByClient(client.ID)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("not in a room"))
		return
	}
	h.removeFromRoom(r, client)
}

type startGameRequest struct {
	Seed int64 `json:"seed,omitempty"`
}

// HandleStartGame launches the room's game session. Controller only.
func (h *LobbyHandler) HandleStartGame(client *ws.Client, msg ws.Message) {
	r := h.rm.FindRoomByClient(client.ID)
	if r == nil {
		client.SendMessage(ws.NewErrorMessage("not in a room"))
		return
	}

	var req startGameRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.SendMessage(ws.NewErrorMessage("invalid start request"))
			return
		}
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := r.Start(client.ID, seed); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}
}

type leaderboardResponse struct {
	Scores []*score.Record `json:"scores"`
}

// HandleLeaderboard returns the top scores.
func (h *LobbyHandler) HandleLeaderboard(client *ws.Client, _ ws.Message) {
	scores := h.rm.Scores()
	if scores == nil {
		client.SendMessage(ws.NewErrorMessage("leaderboard unavailable"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
	defer cancel()

	top, err := scores.Top(ctx, leaderboardLimit)
	if err != nil {
		slog.Error("leaderboard query failed", "error", err)
		client.SendMessage(ws.NewErrorMessage("leaderboard unavailable"))
		return
	}

	resp, _ := ws.NewMessage(ws.TypeLeaderboard, leaderboardResponse{Scores: top})
	client.SendMessage(resp)
}

// HandleDisconnect cleans up after a dropped connection.
func (h *LobbyHandler) HandleDisconnect(client *ws.Client) {
	r := h.rm.FindRoomByClient(client.ID)
	if r == nil {
		return
	}
	h.removeFromRoom(r, client)
}

func (h *LobbyHandler) removeFromRoom(r *room.Room, client *ws.Client) {
	r.Leave(client.ID)
	if r.IsEmpty() {
		h.rm.RemoveRoom(r.Code)
		return
	}
	h.broadcastRoomInfo(r)
}

type roomInfoMessage struct {
	Code    string         `json:"code"`
	Members []*room.Member `json:"members"`
}

func (h *LobbyHandler) broadcastRoomInfo(r *room.Room) {
	msg, err := ws.NewMessage(ws.TypeRoomInfo, roomInfoMessage{
		Code:    r.Code,
		Members: r.Members(),
	})
	if err != nil {
		slog.Error("failed to build room info", "error", err)
		return
	}
	r.BroadcastMessage(msg)
}
