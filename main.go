// Hotseat CLI for the chamber game: all players share one terminal. Useful
// for trying rule changes without a client.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"temple-chambers/internal/game"
)

type player struct {
	name     string
	role     game.Role
	chambers []game.Chamber
}

func main() {
	playerCount := 3
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			playerCount = n
		}
	}
	if playerCount < game.MinPlayers || playerCount > game.MaxPlayers {
		fmt.Printf("player count must be %d..%d\n", game.MinPlayers, game.MaxPlayers)
		os.Exit(1)
	}

	src := game.NewSeededSource(time.Now().UnixNano())
	roles := game.AssignRoles(playerCount, src)
	deck := game.NewDeck(playerCount, src)
	hands := game.DealHands(deck, playerCount, game.HandSize(0))

	players := make([]*player, playerCount)
	for i := range players {
		players[i] = &player{
			name:     fmt.Sprintf("Player %d", i+1),
			role:     roles[i],
			chambers: hands[i],
		}
	}

	state := game.NewState(playerCount, players[0].name)
	fmt.Printf("Deck: %d gold, %d empty, %d traps. %d rounds, pass the key!\n",
		state.TotalGold, state.TotalEmpty, state.TotalTraps, game.MaxRound+1)

	reader := bufio.NewReader(os.Stdin)
	keyHolder := 0

	for state.Phase == game.PhaseSelection {
		fmt.Printf("\nRound %d | gold %d/%d | traps %d/%d | opened %d/%d\n",
			state.Round+1, state.FoundGold, state.TotalGold,
			state.FoundTraps, state.TotalTraps,
			state.ChambersOpenedThisRound, state.ChambersToOpenThisRound)
		printHands(players)
		fmt.Printf("%s holds the key. Choose: player chamber (e.g. 2 1)\n", players[keyHolder].name)

		target, idx, ok := readChoice(reader, players)
		if !ok {
			continue
		}

		ch := &players[target].chambers[idx]
		ch.Revealed = true
		fmt.Printf("%s opens %s's chamber %d: %s!\n",
			players[keyHolder].name, players[target].name, idx+1, ch.Type)

		res := state.Reveal(ch.Type)
		switch res.Outcome {
		case game.OutcomeGameOver:
			fmt.Printf("\n%s\nWinner: %s\n", res.Reason, res.Winner)
		case game.OutcomeNextRound:
			state.AdvanceRound(playerCount)
			next := game.Redistribute(collectHands(players), game.HandSize(state.Round), src)
			for i, p := range players {
				p.chambers = next[i]
			}
			keyHolder = target
			fmt.Printf("Round over! Chambers reshuffled, %s starts round %d.\n",
				players[keyHolder].name, state.Round+1)
		case game.OutcomeContinue:
			keyHolder = target
		}
	}

	fmt.Println("\nRoles:")
	for _, p := range players {
		fmt.Printf("  %s: %s\n", p.name, p.role)
	}
}

func printHands(players []*player) {
	for i, p := range players {
		fmt.Printf("  [%d] %s: ", i+1, p.name)
		for _, ch := range p.chambers {
			if ch.Revealed {
				fmt.Printf("(%s) ", ch.Type)
			} else {
				fmt.Print("[?] ")
			}
		}
		fmt.Println()
	}
}

func readChoice(reader *bufio.Reader, players []*player) (target, idx int, ok bool) {
	fmt.Print("> ")
	line, _ := reader.ReadString('\n')
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Println("Need two numbers: player chamber.")
		return 0, 0, false
	}
	t, err1 := strconv.Atoi(parts[0])
	c, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || t < 1 || t > len(players) {
		fmt.Println("Invalid choice.")
		return 0, 0, false
	}
	if c < 1 || c > len(players[t-1].chambers) {
		fmt.Println("Invalid chamber.")
		return 0, 0, false
	}
	if players[t-1].chambers[c-1].Revealed {
		fmt.Println("Chamber already opened.")
		return 0, 0, false
	}
	return t - 1, c - 1, true
}

func collectHands(players []*player) [][]game.Chamber {
	hands := make([][]game.Chamber, len(players))
	for i, p := range players {
		hands[i] = p.chambers
	}
	return hands
}
