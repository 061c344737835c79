// Package room owns the room registry and the game session state machine.
// All mutations to a room happen under its lock, driven by the Manager;
// events flow out through a Broadcaster so the core stays transport-agnostic.
package room

import (
	"sync"
	"time"

	"temple-chambers/internal/game"
)

// Player is a room member. ID is the connection identity. Role and Chambers
// are private state and are excluded from JSON; public views
// expose name and hand size only.
type Player struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Role     game.Role      `json:"-"`
	Chambers []game.Chamber `json:"-"`
}

// Room is one game session. Players keeps join order; that order determines
// host succession and is never resorted. The mutex serializes every
// operation against the room for its full read-modify-write.
type Room struct {
	mu sync.Mutex

	Code              string
	HostID            string
	TargetPlayerCount int
	Players           []*Player
	Started           bool
	State             *game.State
	CreatedAt         time.Time
}

// PublicPlayer is the room-wide view of a player.
type PublicPlayer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ChamberCount int    `json:"chamberCount"`
}

// View is a marshal-safe snapshot of a room, built under the room lock so it
// can be serialized after the lock is released.
type View struct {
	Code              string         `json:"code"`
	HostID            string         `json:"hostId"`
	TargetPlayerCount int            `json:"targetPlayerCount,omitempty"`
	Players           []PublicPlayer `json:"players"`
	Started           bool           `json:"started"`
	GameState         *StateView     `json:"gameState,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// StateView is the game state as broadcast: the stable key-holder identity
// plus its position in the current player order, resolved at snapshot time.
type StateView struct {
	game.State
	KeyHolderIndex int `json:"keyHolderIndex"`
}

// view builds a snapshot. Caller must hold the room lock.
func (r *Room) view() View {
	v := View{
		Code:              r.Code,
		HostID:            r.HostID,
		TargetPlayerCount: r.TargetPlayerCount,
		Players:           r.publicPlayers(),
		Started:           r.Started,
		CreatedAt:         r.CreatedAt,
	}
	if r.State != nil {
		sv := r.stateView()
		v.GameState = &sv
	}
	return v
}

// stateView resolves the key holder to a position. Caller must hold the room
// lock and State must be non-nil.
func (r *Room) stateView() StateView {
	_, idx := r.findPlayer(r.State.KeyHolderID)
	return StateView{State: *r.State, KeyHolderIndex: idx}
}

// publicPlayers lists members without roles or chamber contents. Caller must
// hold the room lock.
func (r *Room) publicPlayers() []PublicPlayer {
	out := make([]PublicPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, PublicPlayer{ID: p.ID, Name: p.Name, ChamberCount: len(p.Chambers)})
	}
	return out
}

// playersWithRoles lists members with their roles revealed, for the terminal
// game-over event. Caller must hold the room lock.
func (r *Room) playersWithRoles() []PlayerWithRole {
	out := make([]PlayerWithRole, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, PlayerWithRole{ID: p.ID, Name: p.Name, Role: p.Role})
	}
	return out
}

// findPlayer returns the player with the given id and its position, or
// (nil, -1). Caller must hold the room lock.
func (r *Room) findPlayer(id string) (*Player, int) {
	for i, p := range r.Players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// hasName reports whether a member already holds the exact name.
// Caller must hold the room lock.
func (r *Room) hasName(name string) bool {
	for _, p := range r.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

// hands returns the players' hands in room order, aliasing the underlying
// slices. Caller must hold the room lock.
func (r *Room) hands() [][]game.Chamber {
	out := make([][]game.Chamber, len(r.Players))
	for i, p := range r.Players {
		out[i] = p.Chambers
	}
	return out
}
