package room

import "errors"

// All operation failures are recoverable validation errors reported back to
// the requesting client. The messages are surfaced verbatim.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGameAlreadyStarted  = errors.New("game already started")
	ErrRoomFull            = errors.New("room is full (max 10 players)")
	ErrNameTaken           = errors.New("name already taken")
	ErrNotHost             = errors.New("only host can start game")
	ErrNotEnoughPlayers    = errors.New("need at least 3 players")
	ErrTooManyPlayers      = errors.New("maximum 10 players allowed")
	ErrInvalidGameState    = errors.New("invalid game state")
	ErrNotKeyHolder        = errors.New("you are not the key holder")
	ErrWrongPhase          = errors.New("wrong phase")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrInvalidChamberIndex = errors.New("invalid chamber index")
	ErrChamberOpened       = errors.New("chamber already opened")
	ErrSelfOpen            = errors.New("cannot open your own chamber")
)
