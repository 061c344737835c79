package room

import "temple-chambers/internal/game"

// Event names on the wire. roleAssigned and chambersUpdated are private
// single-recipient deliveries; the rest are room-wide broadcasts.
const (
	EventRoomUpdate      = "roomUpdate"
	EventGameStarted     = "gameStarted"
	EventRoleAssigned    = "roleAssigned"
	EventChambersUpdated = "chambersUpdated"
	EventChamberRevealed = "chamberRevealed"
	EventKeyHolderChange = "keyHolderChanged"
	EventNextRound       = "nextRound"
	EventGameOver        = "gameOver"
)

// GameStartedEvent announces game start with only public player info.
type GameStartedEvent struct {
	GameState StateView      `json:"gameState"`
	Players   []PublicPlayer `json:"players"`
}

// RoleAssignedEvent carries a player's secret role and hand. Private.
type RoleAssignedEvent struct {
	Role     game.Role      `json:"role"`
	Chambers []game.Chamber `json:"chambers"`
}

// ChambersUpdatedEvent carries a player's new hand after redistribution. Private.
type ChambersUpdatedEvent struct {
	Chambers []game.Chamber `json:"chambers"`
}

// ChamberRevealedEvent announces a reveal with the updated public state.
type ChamberRevealedEvent struct {
	PlayerName   string           `json:"playerName"`
	PlayerID     string           `json:"playerId"`
	ChamberIndex int              `json:"chamberIndex"`
	ChamberType  game.ChamberType `json:"chamberType"`
	GameState    StateView        `json:"gameState"`
}

// KeyHolderChangedEvent announces a mid-round key transfer.
type KeyHolderChangedEvent struct {
	KeyHolder   string `json:"keyHolder"`
	KeyHolderID string `json:"keyHolderId"`
}

// NextRoundEvent announces a round transition.
type NextRoundEvent struct {
	Round     int       `json:"round"`
	KeyHolder string    `json:"keyHolder"`
	GameState StateView `json:"gameState"`
}

// GameOverEvent is terminal and makes every player's role public.
type GameOverEvent struct {
	Winner  game.Winner      `json:"winner"`
	Reason  string           `json:"reason"`
	Players []PlayerWithRole `json:"players"`
}

// PlayerWithRole is the post-game public view of a player.
type PlayerWithRole struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Role game.Role `json:"role"`
}
