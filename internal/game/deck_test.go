package game_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"temple-chambers/internal/game"
)

func TestGuardianCount(t *testing.T) {
	tests := []struct {
		playerCount int
		want        int
	}{
		{3, 2}, {4, 2}, {5, 2}, {6, 2},
		{7, 3}, {8, 3}, {9, 3},
		{10, 4},
		{2, 2},  // below range falls back
		{11, 2}, // above range falls back
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, game.GuardianCount(tt.playerCount),
			"guardian count for %d players", tt.playerCount)
	}
}

func TestChamberDistribution(t *testing.T) {
	tests := []struct {
		playerCount int
		want        game.Distribution
	}{
		{3, game.Distribution{Gold: 5, Empty: 8, Traps: 2}},
		{4, game.Distribution{Gold: 6, Empty: 12, Traps: 2}},
		{5, game.Distribution{Gold: 7, Empty: 16, Traps: 2}},
		{6, game.Distribution{Gold: 8, Empty: 20, Traps: 2}},
		{7, game.Distribution{Gold: 7, Empty: 26, Traps: 2}},
		{8, game.Distribution{Gold: 8, Empty: 30, Traps: 2}},
		{9, game.Distribution{Gold: 9, Empty: 34, Traps: 2}},
		{10, game.Distribution{Gold: 10, Empty: 37, Traps: 3}},
		{99, game.Distribution{Gold: 7, Empty: 16, Traps: 2}}, // fallback
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, game.ChamberDistribution(tt.playerCount),
			"distribution for %d players", tt.playerCount)
	}
}

func TestHandSize(t *testing.T) {
	assert.Equal(t, 5, game.HandSize(0))
	assert.Equal(t, 4, game.HandSize(1))
	assert.Equal(t, 3, game.HandSize(2))
	assert.Equal(t, 2, game.HandSize(3))
}

func TestNewDeck_Composition(t *testing.T) {
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		dist := game.ChamberDistribution(n)
		deck := game.NewDeck(n, game.NewSeededSource(1))
		require.Len(t, deck, dist.Total(), "deck size for %d players", n)

		counts := map[game.ChamberType]int{}
		for _, c := range deck {
			counts[c]++
		}
		assert.Equal(t, dist.Gold, counts[game.ChamberGold], "gold for %d players", n)
		assert.Equal(t, dist.Empty, counts[game.ChamberEmpty], "empty for %d players", n)
		assert.Equal(t, dist.Traps, counts[game.ChamberTrap], "traps for %d players", n)
	}
}

func TestNewDeck_SeededDeterminism(t *testing.T) {
	a := game.NewDeck(10, game.NewSeededSource(42))
	b := game.NewDeck(10, game.NewSeededSource(42))
	assert.Equal(t, a, b, "same seed must produce the same shuffle")

	c := game.NewDeck(10, game.NewSeededSource(43))
	assert.False(t, reflect.DeepEqual(a, c), "different seeds should produce different shuffles")
}

func TestAssignRoles_Counts(t *testing.T) {
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		roles := game.AssignRoles(n, game.NewSeededSource(7))
		require.Len(t, roles, n)

		guardians := 0
		for _, r := range roles {
			if r == game.RoleGuardian {
				guardians++
			}
		}
		assert.Equal(t, game.GuardianCount(n), guardians, "guardians for %d players", n)
	}
}

// TestAssignRoles_BothRolesPresent checks that every supported player count
// yields at least one player on each side, for arbitrary seeds.
func TestAssignRoles_BothRolesPresent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(game.MinPlayers, game.MaxPlayers).Draw(rt, "playerCount")
		seed := rapid.Int64().Draw(rt, "seed")

		roles := game.AssignRoles(n, game.NewSeededSource(seed))

		guardians, adventurers := 0, 0
		for _, r := range roles {
			switch r {
			case game.RoleGuardian:
				guardians++
			case game.RoleAdventurer:
				adventurers++
			}
		}
		assert.Greater(rt, guardians, 0)
		assert.Greater(rt, adventurers, 0)
		assert.Equal(rt, n, guardians+adventurers)
	})
}
