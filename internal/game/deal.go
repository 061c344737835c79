package game

// DealHands deals handSize chambers to each of playerCount players,
// consuming the deck sequentially in room order. When the deck does not
// divide evenly the tail players receive fewer cards and any leftover cards
// stay undealt.
func DealHands(deck []ChamberType, playerCount, handSize int) [][]Chamber {
	hands := make([][]Chamber, playerCount)
	idx := 0
	for i := range hands {
		hand := make([]Chamber, 0, handSize)
		for j := 0; j < handSize && idx < len(deck); j++ {
			hand = append(hand, Chamber{Type: deck[idx]})
			idx++
		}
		hands[i] = hand
	}
	return hands
}

// UnrevealedPool collects the types of every still-hidden chamber across all
// hands. Revealed chambers have already been scored and are dropped.
func UnrevealedPool(hands [][]Chamber) []ChamberType {
	var pool []ChamberType
	for _, hand := range hands {
		for _, ch := range hand {
			if !ch.Revealed {
				pool = append(pool, ch.Type)
			}
		}
	}
	return pool
}

// Redistribute pools the unrevealed chambers from all hands, shuffles the
// pool, and redeals it at the new round's hand size. Every hand is replaced
// wholesale.
func Redistribute(hands [][]Chamber, handSize int, src Source) [][]Chamber {
	pool := UnrevealedPool(hands)
	shuffle(pool, src)
	return DealHands(pool, len(hands), handSize)
}
