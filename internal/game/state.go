package game

// Game-over reasons surfaced to clients.
const (
	ReasonAllGoldFound    = "All gold has been found!"
	ReasonAllTraps        = "All fire traps have been triggered!"
	ReasonRoundsExhausted = "4 rounds completed without finding all gold!"
)

// State is the session state of one started game. It is mutated exclusively
// by the room manager under the room's lock and becomes read-only once
// Phase == PhaseGameOver.
//
// The key holder is tracked by stable player identity, not list position, so
// a disconnect that splices the player list cannot silently change whose
// turn it is.
type State struct {
	Phase       Phase  `json:"phase"`
	Round       int    `json:"round"`
	KeyHolderID string `json:"keyHolderId"`

	FoundGold  int `json:"foundGold"`
	FoundEmpty int `json:"foundEmpty"`
	FoundTraps int `json:"foundTraps"`
	TotalGold  int `json:"totalGold"`
	TotalEmpty int `json:"totalEmpty"`
	TotalTraps int `json:"totalTraps"`

	ChambersOpenedThisRound int `json:"chambersOpenedThisRound"`
	ChambersToOpenThisRound int `json:"chambersToOpenThisRound"`

	Winner Winner `json:"winner,omitempty"`
}

// NewState initializes the state for a fresh game: round 0, selection phase,
// totals from the distribution table, and the given player holding the key.
func NewState(playerCount int, keyHolderID string) *State {
	dist := ChamberDistribution(playerCount)
	return &State{
		Phase:                   PhaseSelection,
		Round:                   0,
		KeyHolderID:             keyHolderID,
		TotalGold:               dist.Gold,
		TotalEmpty:              dist.Empty,
		TotalTraps:              dist.Traps,
		ChambersToOpenThisRound: playerCount,
	}
}

// Outcome classifies the consequence of a reveal.
type Outcome int

const (
	// OutcomeContinue means play goes on within the current round.
	OutcomeContinue Outcome = iota
	// OutcomeNextRound means the round boundary was reached and a new round
	// must begin.
	OutcomeNextRound
	// OutcomeGameOver means a win condition triggered; Phase and Winner are
	// already set when this outcome is returned.
	OutcomeGameOver
)

// Resolution is the result of recording one reveal.
type Resolution struct {
	Outcome Outcome
	Winner  Winner
	Reason  string
}

// Reveal records a newly opened chamber of the given type and evaluates win
// conditions. The check order is a contract: all-gold-found is checked before
// all-traps-triggered, and both before the round boundary. On a win, Phase
// and Winner are set before returning so state and any subsequent broadcast
// agree.
func (s *State) Reveal(t ChamberType) Resolution {
	switch t {
	case ChamberGold:
		s.FoundGold++
	case ChamberTrap:
		s.FoundTraps++
	case ChamberEmpty:
		s.FoundEmpty++
	}
	s.ChambersOpenedThisRound++

	if s.FoundGold == s.TotalGold {
		return s.finish(WinnerAdventurers, ReasonAllGoldFound)
	}
	if s.FoundTraps == s.TotalTraps {
		return s.finish(WinnerGuardians, ReasonAllTraps)
	}
	if s.ChambersOpenedThisRound >= s.ChambersToOpenThisRound {
		if s.Round >= MaxRound {
			return s.finish(WinnerGuardians, ReasonRoundsExhausted)
		}
		return Resolution{Outcome: OutcomeNextRound}
	}
	return Resolution{Outcome: OutcomeContinue}
}

// AdvanceRound moves the state into the next round: the opened counter resets
// and the per-round quota is recomputed from the current player count.
func (s *State) AdvanceRound(playerCount int) {
	s.Round++
	s.ChambersOpenedThisRound = 0
	s.ChambersToOpenThisRound = playerCount
}

func (s *State) finish(w Winner, reason string) Resolution {
	s.Phase = PhaseGameOver
	s.Winner = w
	return Resolution{Outcome: OutcomeGameOver, Winner: w, Reason: reason}
}
