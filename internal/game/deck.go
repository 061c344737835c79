package game

// NewDeck builds the full chamber deck for the given player count and
// shuffles it. A fresh deck is generated for every game; decks are never
// reused.
func NewDeck(playerCount int, src Source) []ChamberType {
	dist := ChamberDistribution(playerCount)
	deck := make([]ChamberType, 0, dist.Total())
	for i := 0; i < dist.Gold; i++ {
		deck = append(deck, ChamberGold)
	}
	for i := 0; i < dist.Empty; i++ {
		deck = append(deck, ChamberEmpty)
	}
	for i := 0; i < dist.Traps; i++ {
		deck = append(deck, ChamberTrap)
	}
	shuffle(deck, src)
	return deck
}

// AssignRoles produces a shuffled role sequence of length playerCount with
// exactly GuardianCount(playerCount) guardians. Roles are assigned to
// players positionally, in join order.
func AssignRoles(playerCount int, src Source) []Role {
	guardians := GuardianCount(playerCount)
	roles := make([]Role, 0, playerCount)
	for i := 0; i < guardians; i++ {
		roles = append(roles, RoleGuardian)
	}
	for i := guardians; i < playerCount; i++ {
		roles = append(roles, RoleAdventurer)
	}
	shuffle(roles, src)
	return roles
}
