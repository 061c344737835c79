// Package game holds the pure rules of the chamber game: card tables, role
// and deck generation, hand dealing, and the per-game state transitions.
// Nothing in this package knows about rooms or transports.
package game

// ChamberType is the hidden content of a single chamber card.
type ChamberType string

const (
	ChamberGold  ChamberType = "gold"
	ChamberEmpty ChamberType = "empty"
	ChamberTrap  ChamberType = "trap"
)

// Role is a player's secret allegiance.
type Role string

const (
	RoleAdventurer Role = "adventurer"
	RoleGuardian   Role = "guardian"
)

// Phase is the game session phase.
type Phase string

const (
	PhaseSelection Phase = "selection"
	PhaseGameOver  Phase = "gameOver"
)

// Winner identifies the winning side once the game ends.
type Winner string

const (
	WinnerAdventurers Winner = "adventurers"
	WinnerGuardians   Winner = "guardians"
)

// Chamber is one card in a player's hand. Revealed is monotonic: once a
// chamber is opened it never closes.
type Chamber struct {
	Type     ChamberType `json:"type"`
	Revealed bool        `json:"revealed"`
}

const (
	// MinPlayers is the minimum number of players required to start a game.
	MinPlayers = 3
	// MaxPlayers is the hard cap on players in a room.
	MaxPlayers = 10
	// MaxRound is the last round index; the game spans rounds 0..MaxRound.
	MaxRound = 3
)

// Distribution is the chamber card mix for a player count.
type Distribution struct {
	Gold  int `json:"gold"`
	Empty int `json:"empty"`
	Traps int `json:"traps"`
}

// Total is the deck size produced by the distribution.
func (d Distribution) Total() int {
	return d.Gold + d.Empty + d.Traps
}

// guardianCounts and distributions come from the official rule set,
// keyed by player count.
var guardianCounts = map[int]int{
	3: 2, 4: 2, 5: 2, 6: 2, 7: 3, 8: 3, 9: 3, 10: 4,
}

var distributions = map[int]Distribution{
	3:  {Gold: 5, Empty: 8, Traps: 2},
	4:  {Gold: 6, Empty: 12, Traps: 2},
	5:  {Gold: 7, Empty: 16, Traps: 2},
	6:  {Gold: 8, Empty: 20, Traps: 2},
	7:  {Gold: 7, Empty: 26, Traps: 2},
	8:  {Gold: 8, Empty: 30, Traps: 2},
	9:  {Gold: 9, Empty: 34, Traps: 2},
	10: {Gold: 10, Empty: 37, Traps: 3},
}

// GuardianCount returns the number of guardians for a player count.
// Counts outside 3..10 fall back to 2.
func GuardianCount(playerCount int) int {
	if n, ok := guardianCounts[playerCount]; ok {
		return n
	}
	return 2
}

// ChamberDistribution returns the card mix for a player count.
// Counts outside 3..10 fall back to the 5-player distribution.
func ChamberDistribution(playerCount int) Distribution {
	if d, ok := distributions[playerCount]; ok {
		return d
	}
	return distributions[5]
}

// HandSize is the number of chambers dealt per player in the given round:
// 5 in round 0 down to 2 in round 3.
func HandSize(round int) int {
	return 5 - round
}
