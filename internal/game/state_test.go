package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temple-chambers/internal/game"
)

func TestNewState(t *testing.T) {
	s := game.NewState(3, "p1")

	assert.Equal(t, game.PhaseSelection, s.Phase)
	assert.Equal(t, 0, s.Round)
	assert.Equal(t, "p1", s.KeyHolderID)
	assert.Equal(t, 5, s.TotalGold)
	assert.Equal(t, 8, s.TotalEmpty)
	assert.Equal(t, 2, s.TotalTraps)
	assert.Equal(t, 0, s.FoundGold+s.FoundEmpty+s.FoundTraps)
	assert.Equal(t, 3, s.ChambersToOpenThisRound)
	assert.Empty(t, s.Winner)
}

func TestReveal_CountsByType(t *testing.T) {
	s := game.NewState(5, "p1")

	res := s.Reveal(game.ChamberEmpty)
	assert.Equal(t, game.OutcomeContinue, res.Outcome)
	assert.Equal(t, 1, s.FoundEmpty)

	res = s.Reveal(game.ChamberGold)
	assert.Equal(t, game.OutcomeContinue, res.Outcome)
	assert.Equal(t, 1, s.FoundGold)

	res = s.Reveal(game.ChamberTrap)
	assert.Equal(t, game.OutcomeContinue, res.Outcome)
	assert.Equal(t, 1, s.FoundTraps)

	assert.Equal(t, 3, s.ChambersOpenedThisRound)
}

func TestReveal_AllGoldFound(t *testing.T) {
	s := game.NewState(3, "p1")
	s.FoundGold = s.TotalGold - 1

	res := s.Reveal(game.ChamberGold)

	require.Equal(t, game.OutcomeGameOver, res.Outcome)
	assert.Equal(t, game.WinnerAdventurers, res.Winner)
	assert.Equal(t, game.ReasonAllGoldFound, res.Reason)
	assert.Equal(t, game.PhaseGameOver, s.Phase)
	assert.Equal(t, game.WinnerAdventurers, s.Winner)
}

func TestReveal_AllTrapsTriggered(t *testing.T) {
	s := game.NewState(3, "p1")
	s.FoundTraps = s.TotalTraps - 1

	res := s.Reveal(game.ChamberTrap)

	require.Equal(t, game.OutcomeGameOver, res.Outcome)
	assert.Equal(t, game.WinnerGuardians, res.Winner)
	assert.Equal(t, game.ReasonAllTraps, res.Reason)
	assert.Equal(t, game.PhaseGameOver, s.Phase)
}

// TestReveal_WinChecksPrecedeRoundBoundary pins the check ordering: a reveal
// that is both the last gold and the last of the round must end the game for
// the adventurers, not advance the round.
func TestReveal_WinChecksPrecedeRoundBoundary(t *testing.T) {
	s := game.NewState(3, "p1")
	s.FoundGold = s.TotalGold - 1
	s.ChambersOpenedThisRound = s.ChambersToOpenThisRound - 1

	res := s.Reveal(game.ChamberGold)

	require.Equal(t, game.OutcomeGameOver, res.Outcome)
	assert.Equal(t, game.WinnerAdventurers, res.Winner)
}

// TestReveal_TrapExhaustionAtRoundBoundary pins the same ordering for traps:
// the trap win fires before the round-boundary check.
func TestReveal_TrapExhaustionAtRoundBoundary(t *testing.T) {
	s := game.NewState(3, "p1")
	s.FoundTraps = s.TotalTraps - 1
	s.ChambersOpenedThisRound = s.ChambersToOpenThisRound - 1

	res := s.Reveal(game.ChamberTrap)

	require.Equal(t, game.OutcomeGameOver, res.Outcome)
	assert.Equal(t, game.WinnerGuardians, res.Winner)
	assert.Equal(t, game.ReasonAllTraps, res.Reason)
}

func TestReveal_RoundBoundary(t *testing.T) {
	s := game.NewState(3, "p1")

	s.Reveal(game.ChamberEmpty)
	s.Reveal(game.ChamberEmpty)
	res := s.Reveal(game.ChamberEmpty)

	require.Equal(t, game.OutcomeNextRound, res.Outcome)
	assert.Equal(t, game.PhaseSelection, s.Phase, "round boundary does not end the game")

	s.AdvanceRound(3)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, 0, s.ChambersOpenedThisRound)
	assert.Equal(t, 3, s.ChambersToOpenThisRound)
}

func TestReveal_RoundsExhausted(t *testing.T) {
	s := game.NewState(3, "p1")
	s.Round = game.MaxRound
	s.ChambersOpenedThisRound = s.ChambersToOpenThisRound - 1

	res := s.Reveal(game.ChamberEmpty)

	require.Equal(t, game.OutcomeGameOver, res.Outcome)
	assert.Equal(t, game.WinnerGuardians, res.Winner)
	assert.Equal(t, game.ReasonRoundsExhausted, res.Reason)
}

// TestFullGame_NoDoubleCounting plays every chamber of a 3-player deck
// through the state machine and checks the found counters account for each
// reveal exactly once, never exceeding the deck total.
func TestFullGame_NoDoubleCounting(t *testing.T) {
	s := game.NewState(3, "p1")
	deck := game.NewDeck(3, game.NewSeededSource(9))

	revealed := 0
	for _, c := range deck {
		if s.Phase == game.PhaseGameOver {
			break
		}
		res := s.Reveal(c)
		revealed++
		if res.Outcome == game.OutcomeNextRound {
			s.AdvanceRound(3)
		}
	}

	total := s.FoundGold + s.FoundEmpty + s.FoundTraps
	assert.Equal(t, revealed, total)
	assert.LessOrEqual(t, total, len(deck))
	assert.Equal(t, game.PhaseGameOver, s.Phase,
		"exhausting the deck must have triggered a win along the way")
}
