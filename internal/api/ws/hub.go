// Package ws is the connection gateway: it maps inbound client intents to
// room manager operations and outbound manager events to websocket frames,
// keeping the room-wide vs single-recipient distinction intact.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Hub tracks live connections and their room membership. It implements the
// room package's Broadcaster, so the manager never sees a websocket.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client            // connID -> client
	rooms   map[string]map[string]*Client // roomCode -> connID -> client

	rm  RoomManager
	log *zap.Logger
}

func NewHub(rm RoomManager, log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
		rm:      rm,
		log:     log,
	}
}

// HandleWS upgrades the request and runs the connection's pumps. Each
// connection gets a fresh id that serves as its player identity.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		ID:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	h.log.Debug("client connected", zap.String("conn", client.ID))

	go client.writePump()
	client.readPump()
}

// Broadcast sends an event to every connection in a room.
func (h *Hub) Broadcast(roomCode, event string, data any) {
	msg, err := encodeEvent(event, data)
	if err != nil {
		h.log.Error("encoding broadcast", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.rooms[roomCode] {
		client.enqueue(msg)
	}
}

// SendTo sends a private event to a single connection.
func (h *Hub) SendTo(connID, event string, data any) {
	msg, err := encodeEvent(event, data)
	if err != nil {
		h.log.Error("encoding private event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if client, ok := h.clients[connID]; ok {
		client.enqueue(msg)
	}
}

// dispatch routes one intent and replies to the caller. A room-changing
// intent also updates the hub's membership index on success.
func (h *Hub) dispatch(c *Client, env Envelope) {
	switch env.Action {
	case ActionCreateRoom:
		var req createRoomRequest
		if err := json.Unmarshal(env.Data, &req); err != nil || req.PlayerName == "" {
			h.respond(c, env.Action, result{Success: false, Error: "playerName required"})
			return
		}
		if h.inRoom(c) {
			h.respond(c, env.Action, result{Success: false, Error: "already in a room"})
			return
		}
		view, err := h.rm.CreateRoom(c.ID, req.PlayerName, req.TargetPlayerCount)
		if err != nil {
			h.respond(c, env.Action, errResult(err))
			return
		}
		h.joinRoom(c, view.Code)
		res := okResult()
		res.RoomCode = view.Code
		res.Room = &view
		h.respond(c, env.Action, res)

	case ActionJoinRoom:
		var req joinRoomRequest
		if err := json.Unmarshal(env.Data, &req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			h.respond(c, env.Action, result{Success: false, Error: "roomCode and playerName required"})
			return
		}
		if h.inRoom(c) {
			h.respond(c, env.Action, result{Success: false, Error: "already in a room"})
			return
		}
		view, err := h.rm.JoinRoom(req.RoomCode, c.ID, req.PlayerName)
		if err != nil {
			h.respond(c, env.Action, errResult(err))
			return
		}
		h.joinRoom(c, view.Code)
		res := okResult()
		res.Room = &view
		h.respond(c, env.Action, res)

	case ActionStartGame:
		if err := h.rm.StartGame(c.ID); err != nil {
			h.respond(c, env.Action, errResult(err))
			return
		}
		h.respond(c, env.Action, okResult())

	case ActionOpenChamber:
		var req openChamberRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			h.respond(c, env.Action, result{Success: false, Error: "targetPlayerId and chamberIndex required"})
			return
		}
		if err := h.rm.OpenChamber(c.ID, req.TargetPlayerID, req.ChamberIndex); err != nil {
			h.respond(c, env.Action, errResult(err))
			return
		}
		h.respond(c, env.Action, okResult())

	case ActionGetRoomState:
		view, role, chambers, err := h.rm.RoomState(c.ID)
		if err != nil {
			h.respond(c, env.Action, errResult(err))
			return
		}
		res := okResult()
		res.Room = &view
		res.PlayerRole = role
		res.PlayerChambers = chambers
		h.respond(c, env.Action, res)

	default:
		h.log.Debug("unknown action", zap.String("action", env.Action))
		h.respond(c, env.Action, result{Success: false, Error: "unknown action"})
	}
}

// respond replies to the requesting client only, echoing the intent action.
func (h *Hub) respond(c *Client, action string, res result) {
	msg, err := encodeEvent(action, res)
	if err != nil {
		h.log.Error("encoding response", zap.String("action", action), zap.Error(err))
		return
	}
	c.enqueue(msg)
}

// inRoom reports whether the client already belongs to a room. One room per
// connection: a second create/join would leak the old membership.
func (h *Hub) inRoom(c *Client) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return c.roomCode != ""
}

// joinRoom records the client's room membership for broadcast routing.
func (h *Hub) joinRoom(c *Client, roomCode string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.roomCode != "" {
		delete(h.rooms[c.roomCode], c.ID)
	}
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[string]*Client)
	}
	h.rooms[roomCode][c.ID] = c
	c.roomCode = roomCode
}

// unregister removes a dropped connection and tells the manager, which
// handles player removal, host succession, and room garbage collection.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if c.roomCode != "" {
		delete(h.rooms[c.roomCode], c.ID)
		if len(h.rooms[c.roomCode]) == 0 {
			delete(h.rooms, c.roomCode)
		}
	}
	delete(h.clients, c.ID)
	close(c.send)
	h.mu.Unlock()

	h.log.Debug("client disconnected", zap.String("conn", c.ID))
	h.rm.RemoveConnection(c.ID)
}

func encodeEvent(action string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Action: action, Data: payload})
}
