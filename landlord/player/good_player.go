package player

import (
	"sort"

	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/landlord/hand"
)

// bombThreshold is the hand size an opponent has to be down to before a bomb
// gets spent on a beatable play.
const bombThreshold = 5

type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(id int64, name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{id: id, name: name}}
}

func (p goodPlayer) Choose(prompt game.Prompt) (game.Action, error) {
	switch prompt.Kind {
	case game.PromptBid:
		return p.bid(prompt), nil
	case game.PromptPlay:
		return p.play(prompt), nil
	}
	return game.Continue(), nil
}

func (p goodPlayer) bid(prompt game.Prompt) game.Action {
	strength := Strength(prompt.State.CurrentHand)
	var desired int
	switch {
	case strength >= 12:
		desired = 3
	case strength >= 8:
		desired = 2
	case strength >= 5:
		desired = 1
	}
	if desired > 0 && prompt.Offers(game.Bid(desired)) {
		return game.Bid(desired)
	}
	return game.Pass()
}

// Strength scores a hand for bidding: jokers, twos, aces and bombs count.
func Strength(cards card.Cards) int {
	strength := 0
	counts := map[card.Rank]int{}
	for _, c := range cards {
		counts[c.Rank]++
		switch c.Rank {
		case card.RankBlackJoker, card.RankRedJoker, card.RankTwo:
			strength += 2
		case card.RankAce:
			strength++
		}
	}
	if counts[card.RankBlackJoker] > 0 && counts[card.RankRedJoker] > 0 {
		strength += 2
	}
	for _, count := range counts {
		if count == 4 {
			strength += 3
		}
	}
	return strength
}

func (p goodPlayer) play(prompt game.Prompt) game.Action {
	state := prompt.State
	if state.ToBeat != nil && prompt.CanPass() && state.IsTeammate(state.ToBeatBy) {
		return game.Pass()
	}

	candidates := append([]hand.Hand{}, prompt.Candidates...)
	for _, candidate := range candidates {
		if candidate.Size() == len(state.CurrentHand) {
			return game.Play(candidate)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsBomb() != b.IsBomb() {
			return !a.IsBomb()
		}
		if c := card.Compare(a.Leading(), b.Leading()); c != 0 {
			return c < 0
		}
		return a.Size() > b.Size()
	})

	weakest := candidates[0]
	if weakest.IsBomb() && state.ToBeat != nil && prompt.CanPass() && !p.opponentClosing(state) {
		return game.Pass()
	}
	return game.Play(weakest)
}

func (p goodPlayer) opponentClosing(state game.State) bool {
	for name, count := range state.PlayerHandCounts {
		if name != p.name && !state.IsTeammate(name) && count <= bombThreshold {
			return true
		}
	}
	return false
}
