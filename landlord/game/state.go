package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/hand"
)

// State is what a player may know when asked for a decision.
type State struct {
	Round            int
	Phase            consts.PhaseID
	PlayerName       string
	Team             int
	CurrentHand      card.Cards
	Landlord         string
	Bid              int
	ToBeat           *hand.Hand
	ToBeatBy         string
	PlayerSequence   []string
	PlayerHandCounts map[string]int
	PlayerTeams      map[string]int
	Scores           map[string]int64
	// Remaining counts, per rank, the cards neither in the current hand nor played yet.
	Remaining map[card.Rank]int
}

// IsTeammate reports whether name plays on the same side as the state's player.
func (s State) IsTeammate(name string) bool {
	return s.Team != consts.TeamNone && s.PlayerTeams[name] == s.Team
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Round %d, %s", s.Round, consts.Phases[s.Phase]))
	if s.Landlord != "" {
		lines = append(lines, fmt.Sprintf("Landlord: %s (bid %d)", s.Landlord, s.Bid))
	}
	if s.ToBeat != nil {
		lines = append(lines, fmt.Sprintf("To beat: %s by %s", s.ToBeat, s.ToBeatBy))
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s), %d point(s))", playerName, s.PlayerHandCounts[playerName], s.Scores[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	if len(s.Remaining) > 0 {
		var counts []string
		for _, key := range consts.MnemonicSorted {
			rank := card.Rank(key)
			if s.Remaining[rank] > 0 {
				counts = append(counts, fmt.Sprintf("%s:%d", rank, s.Remaining[rank]))
			}
		}
		lines = append(lines, fmt.Sprintf("Remaining: %s", strings.Join(counts, " ")))
	}

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentHand))

	return strings.Join(lines, "\n")
}
