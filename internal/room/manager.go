package room

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"temple-chambers/internal/config"
	"temple-chambers/internal/game"
)

// Store is the registry's backing map. The memory store implements it.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Exists(code string) bool
}

// codeAlphabet excludes ambiguous characters (I, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Manager is the single owner of room mutations. Every operation locks the
// target room for its full read-modify-write, so calls against the same room
// never interleave. The conn index maps connection ids to room codes so
// disconnects resolve without scanning.
type Manager struct {
	store  Store
	cfg    config.GameConfig
	b      Broadcaster
	log    *zap.Logger
	src    game.Source
	codeFn func() string

	mu     sync.Mutex
	byConn map[string]string
}

// Option customizes a Manager; used by tests to pin randomness and codes.
type Option func(*Manager)

// WithSource injects the shuffle randomness source.
func WithSource(src game.Source) Option {
	return func(m *Manager) { m.src = src }
}

// WithCodeFn injects the room-code generator.
func WithCodeFn(fn func() string) Option {
	return func(m *Manager) { m.codeFn = fn }
}

// NewManager builds a manager over the given store. Call SetBroadcaster once
// the transport hub exists; until then events are dropped.
func NewManager(store Store, cfg config.GameConfig, log *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		cfg:    cfg,
		b:      noopBroadcaster{},
		log:    log,
		src:    game.NewSource(),
		byConn: make(map[string]string),
	}
	m.codeFn = func() string { return randCode(cfg.RoomCodeLength, m.src) }
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetBroadcaster wires the event sink. Implementations must serialize event
// data before returning, since payloads may alias state that mutates later.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.b = b
}

// NormalizeCode maps user input to the canonical room-code form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateRoom creates a room with the caller as host and sole member.
// targetPlayerCount is advisory only; 0 means unset.
func (m *Manager) CreateRoom(connID, name string, targetPlayerCount int) (View, error) {
	if name == "" {
		name = "Player"
	}
	code := m.uniqueCode()
	r := &Room{
		Code:              code,
		HostID:            connID,
		TargetPlayerCount: targetPlayerCount,
		Players:           []*Player{{ID: connID, Name: name}},
		CreatedAt:         time.Now(),
	}
	m.store.SaveRoom(r)

	m.mu.Lock()
	m.byConn[connID] = code
	m.mu.Unlock()

	m.log.Info("room created",
		zap.String("code", code),
		zap.String("host", name),
		zap.Int("targetPlayers", targetPlayerCount))

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view(), nil
}

// JoinRoom adds the caller to an existing room. Fails once the game has
// started, at the player cap, or when the exact name is already taken.
func (m *Manager) JoinRoom(code, connID, name string) (View, error) {
	code = NormalizeCode(code)
	r, ok := m.store.GetRoom(code)
	if !ok {
		return View{}, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Started {
		return View{}, ErrGameAlreadyStarted
	}
	if len(r.Players) >= game.MaxPlayers {
		return View{}, ErrRoomFull
	}
	if r.hasName(name) {
		return View{}, ErrNameTaken
	}

	r.Players = append(r.Players, &Player{ID: connID, Name: name})

	m.mu.Lock()
	m.byConn[connID] = code
	m.mu.Unlock()

	m.log.Info("player joined", zap.String("code", code), zap.String("name", name))

	m.b.Broadcast(code, EventRoomUpdate, r.view())
	return r.view(), nil
}

// Lookup returns the public snapshot of a room.
func (m *Manager) Lookup(code string) (View, error) {
	r, ok := m.store.GetRoom(NormalizeCode(code))
	if !ok {
		return View{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view(), nil
}

// StartGame starts the caller's room: roles are assigned, the deck is dealt,
// and the session state is initialized with the first player holding the
// key. Each player privately receives their role and hand; the room receives
// a public start event with hand sizes only.
func (m *Manager) StartGame(connID string) error {
	r, ok := m.roomForConn(connID)
	if !ok {
		return ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.HostID != connID {
		return ErrNotHost
	}
	if r.Started {
		return ErrGameAlreadyStarted
	}
	n := len(r.Players)
	if n < game.MinPlayers {
		return ErrNotEnoughPlayers
	}
	if n > game.MaxPlayers {
		return ErrTooManyPlayers
	}

	roles := game.AssignRoles(n, m.src)
	deck := game.NewDeck(n, m.src)
	hands := game.DealHands(deck, n, game.HandSize(0))
	for i, p := range r.Players {
		p.Role = roles[i]
		p.Chambers = hands[i]
	}

	r.State = game.NewState(n, r.Players[0].ID)
	r.Started = true

	for _, p := range r.Players {
		m.b.SendTo(p.ID, EventRoleAssigned, RoleAssignedEvent{Role: p.Role, Chambers: p.Chambers})
	}
	m.b.Broadcast(r.Code, EventGameStarted, GameStartedEvent{
		GameState: r.stateView(),
		Players:   r.publicPlayers(),
	})

	m.log.Info("game started", zap.String("code", r.Code), zap.Int("players", n))
	return nil
}

// OpenChamber resolves the key holder revealing one chamber of the target
// player. Win conditions are evaluated before the round boundary, and the
// key passes to the targeted player on every successful reveal.
func (m *Manager) OpenChamber(connID, targetPlayerID string, chamberIndex int) error {
	r, ok := m.roomForConn(connID)
	if !ok {
		return ErrInvalidGameState
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.State
	if !r.Started || st == nil {
		return ErrInvalidGameState
	}
	if st.KeyHolderID != connID {
		return ErrNotKeyHolder
	}
	if st.Phase != game.PhaseSelection {
		return ErrWrongPhase
	}
	target, _ := r.findPlayer(targetPlayerID)
	if target == nil {
		return ErrPlayerNotFound
	}
	if !m.cfg.AllowSelfOpen && target.ID == connID {
		return ErrSelfOpen
	}
	if chamberIndex < 0 || chamberIndex >= len(target.Chambers) {
		return ErrInvalidChamberIndex
	}
	ch := &target.Chambers[chamberIndex]
	if ch.Revealed {
		return ErrChamberOpened
	}

	ch.Revealed = true
	res := st.Reveal(ch.Type)

	switch res.Outcome {
	case game.OutcomeNextRound:
		st.AdvanceRound(len(r.Players))
		st.KeyHolderID = target.ID
		next := game.Redistribute(r.hands(), game.HandSize(st.Round), m.src)
		for i, p := range r.Players {
			p.Chambers = next[i]
			m.b.SendTo(p.ID, EventChambersUpdated, ChambersUpdatedEvent{Chambers: p.Chambers})
		}
		m.b.Broadcast(r.Code, EventNextRound, NextRoundEvent{
			Round:     st.Round,
			KeyHolder: target.Name,
			GameState: r.stateView(),
		})
		m.log.Info("next round",
			zap.String("code", r.Code),
			zap.Int("round", st.Round),
			zap.String("keyHolder", target.Name))
	case game.OutcomeContinue:
		st.KeyHolderID = target.ID
	}

	m.b.Broadcast(r.Code, EventChamberRevealed, ChamberRevealedEvent{
		PlayerName:   target.Name,
		PlayerID:     target.ID,
		ChamberIndex: chamberIndex,
		ChamberType:  ch.Type,
		GameState:    r.stateView(),
	})

	switch res.Outcome {
	case game.OutcomeGameOver:
		m.b.Broadcast(r.Code, EventGameOver, GameOverEvent{
			Winner:  res.Winner,
			Reason:  res.Reason,
			Players: r.playersWithRoles(),
		})
		m.log.Info("game over",
			zap.String("code", r.Code),
			zap.String("winner", string(res.Winner)),
			zap.String("reason", res.Reason))
	case game.OutcomeContinue:
		m.b.Broadcast(r.Code, EventKeyHolderChange, KeyHolderChangedEvent{
			KeyHolder:   target.Name,
			KeyHolderID: target.ID,
		})
	}
	return nil
}

// RoomState returns the caller's room snapshot plus their private role and
// hand, for reconnect-style refreshes.
func (m *Manager) RoomState(connID string) (View, game.Role, []game.Chamber, error) {
	r, ok := m.roomForConn(connID)
	if !ok {
		return View{}, "", nil, ErrRoomNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, _ := r.findPlayer(connID)
	if p == nil {
		return View{}, "", nil, ErrPlayerNotFound
	}
	chambers := make([]game.Chamber, len(p.Chambers))
	copy(chambers, p.Chambers)
	return r.view(), p.Role, chambers, nil
}

// RemoveConnection handles a disconnect: the player leaves their room, an
// empty room is deleted immediately, and host duty passes to the player now
// first in join order. During an active game the leaver's unrevealed
// chambers go back into play round-robin so the deck totals never change,
// and a departed key holder's key passes to the player now occupying their
// former position.
func (m *Manager) RemoveConnection(connID string) {
	m.mu.Lock()
	code, ok := m.byConn[connID]
	delete(m.byConn, connID)
	m.mu.Unlock()
	if !ok {
		return
	}

	r, ok := m.store.GetRoom(code)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, idx := r.findPlayer(connID)
	if p == nil {
		return
	}
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

	if len(r.Players) == 0 {
		m.store.DeleteRoom(code)
		m.log.Info("room deleted", zap.String("code", code))
		return
	}

	if r.HostID == connID {
		r.HostID = r.Players[0].ID
		m.log.Info("host changed",
			zap.String("code", code),
			zap.String("host", r.Players[0].Name))
	}

	if r.Started && r.State != nil && r.State.Phase == game.PhaseSelection {
		m.reassignChambers(r, p)
		if r.State.KeyHolderID == connID {
			next := r.Players[idx%len(r.Players)]
			r.State.KeyHolderID = next.ID
			m.b.Broadcast(code, EventKeyHolderChange, KeyHolderChangedEvent{
				KeyHolder:   next.Name,
				KeyHolderID: next.ID,
			})
		}
	}

	m.b.Broadcast(code, EventRoomUpdate, r.view())
}

// reassignChambers deals a leaver's unrevealed chambers round-robin to the
// remaining players and notifies each changed hand. Caller must hold the
// room lock.
func (m *Manager) reassignChambers(r *Room, leaver *Player) {
	changed := make(map[string]bool)
	i := 0
	for _, ch := range leaver.Chambers {
		if ch.Revealed {
			continue
		}
		p := r.Players[i%len(r.Players)]
		p.Chambers = append(p.Chambers, game.Chamber{Type: ch.Type})
		changed[p.ID] = true
		i++
	}
	for _, p := range r.Players {
		if changed[p.ID] {
			m.b.SendTo(p.ID, EventChambersUpdated, ChambersUpdatedEvent{Chambers: p.Chambers})
		}
	}
}

// roomForConn resolves a connection to its room.
func (m *Manager) roomForConn(connID string) (*Room, bool) {
	m.mu.Lock()
	code, ok := m.byConn[connID]
	m.mu.Unlock()
	if !ok {
		return nil, false
	}
	return m.store.GetRoom(code)
}

// uniqueCode generates codes until one misses the registry. The code space
// (32^6 by default) makes collisions rare; regeneration handles the rest.
func (m *Manager) uniqueCode() string {
	for {
		code := m.codeFn()
		if !m.store.Exists(code) {
			return code
		}
	}
}

func randCode(n int, src game.Source) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[src.Intn(len(codeAlphabet))]
	}
	return string(b)
}
