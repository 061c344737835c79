package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temple-chambers/internal/game"
)

func TestDealHands_InitialDeal(t *testing.T) {
	deck := game.NewDeck(3, game.NewSeededSource(1)) // 15 cards
	hands := game.DealHands(deck, 3, game.HandSize(0))

	require.Len(t, hands, 3)
	for i, hand := range hands {
		assert.Len(t, hand, 5, "hand %d", i)
		for _, ch := range hand {
			assert.False(t, ch.Revealed)
		}
	}

	// Dealing consumes the deck sequentially.
	assert.Equal(t, deck[0], hands[0][0].Type)
	assert.Equal(t, deck[5], hands[1][0].Type)
	assert.Equal(t, deck[14], hands[2][4].Type)
}

func TestDealHands_Truncation(t *testing.T) {
	deck := []game.ChamberType{
		game.ChamberGold, game.ChamberEmpty, game.ChamberEmpty,
		game.ChamberTrap, game.ChamberEmpty, game.ChamberGold,
		game.ChamberEmpty,
	}
	hands := game.DealHands(deck, 3, 3)

	require.Len(t, hands, 3)
	assert.Len(t, hands[0], 3)
	assert.Len(t, hands[1], 3)
	assert.Len(t, hands[2], 1, "short pool leaves the last player with fewer cards")
}

func TestUnrevealedPool(t *testing.T) {
	hands := [][]game.Chamber{
		{
			{Type: game.ChamberGold, Revealed: true},
			{Type: game.ChamberEmpty},
		},
		{
			{Type: game.ChamberTrap},
			{Type: game.ChamberEmpty, Revealed: true},
		},
	}
	pool := game.UnrevealedPool(hands)
	assert.ElementsMatch(t,
		[]game.ChamberType{game.ChamberEmpty, game.ChamberTrap}, pool,
		"only unrevealed chambers are pooled")
}

func TestRedistribute(t *testing.T) {
	deck := game.NewDeck(3, game.NewSeededSource(2))
	hands := game.DealHands(deck, 3, 5)

	// Reveal one chamber per player, as a full round would.
	hands[0][0].Revealed = true
	hands[1][2].Revealed = true
	hands[2][4].Revealed = true

	wantCounts := map[game.ChamberType]int{}
	for _, hand := range hands {
		for _, ch := range hand {
			if !ch.Revealed {
				wantCounts[ch.Type]++
			}
		}
	}

	next := game.Redistribute(hands, game.HandSize(1), game.NewSeededSource(3))
	require.Len(t, next, 3)

	gotCounts := map[game.ChamberType]int{}
	for i, hand := range next {
		assert.Len(t, hand, 4, "round 1 hand size for player %d", i)
		for _, ch := range hand {
			assert.False(t, ch.Revealed, "redistributed chambers start hidden")
			gotCounts[ch.Type]++
		}
	}
	assert.Equal(t, wantCounts, gotCounts,
		"redistribution preserves the unrevealed card mix exactly")
}

func TestRedistribute_UnevenPool(t *testing.T) {
	// 5 unrevealed cards across 3 players at hand size 2: one player comes
	// up short and the shortfall lands on the last player in order.
	hands := [][]game.Chamber{
		{{Type: game.ChamberGold}, {Type: game.ChamberEmpty}},
		{{Type: game.ChamberEmpty}, {Type: game.ChamberEmpty}},
		{{Type: game.ChamberTrap, Revealed: true}, {Type: game.ChamberGold}},
	}
	next := game.Redistribute(hands, 2, game.NewSeededSource(4))

	require.Len(t, next, 3)
	assert.Len(t, next[0], 2)
	assert.Len(t, next[1], 2)
	assert.Len(t, next[2], 1)
}
