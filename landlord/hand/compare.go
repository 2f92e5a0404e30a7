package hand

import (
	"github.com/ratel-online/landlord/landlord/card"
)

// IsBetter reports whether candidate beats toBeat. A nil toBeat is an opening play
// that any hand satisfies. A rocket beats everything, a bomb beats every other
// hand but a rocket, and otherwise the category and the chain length must match
// while the leading primal card scores strictly higher.
func IsBetter(candidate Hand, toBeat *Hand) bool {
	if toBeat == nil {
		return true
	}
	if candidate.Category == Rocket {
		return toBeat.Category != Rocket
	}
	if toBeat.Category == Rocket {
		return false
	}
	if candidate.Category == Bomb && toBeat.Category != Bomb {
		return true
	}
	if candidate.Category != toBeat.Category || len(candidate.Chain) != len(toBeat.Chain) {
		return false
	}
	return card.Compare(candidate.Leading(), toBeat.Leading()) > 0
}

// CanPossiblyBeat is a necessary condition for holding a hand that beats toBeat.
// It only looks at sizes, so a false result lets a player pass without any
// enumeration.
func CanPossiblyBeat(handSize int, jokerDiscarded bool, toBeat *Hand) bool {
	if toBeat == nil {
		return handSize > 0
	}
	if toBeat.Category == Rocket {
		return false
	}
	rocket := handSize >= 2 && !jokerDiscarded
	bomb := handSize >= 4
	follow := handSize >= toBeat.Size()
	return rocket || bomb || follow
}

// Beating lists the hands formed from cards that beat toBeat.
func Beating(cards []card.Card, toBeat *Hand) []Hand {
	if toBeat == nil {
		return Classify(cards)
	}
	if toBeat.Category == Rocket {
		return []Hand{}
	}
	categories := []*Category{toBeat.Category}
	if toBeat.Category != Bomb {
		categories = append(categories, Bomb)
	}
	// the pair pass already turns the jokers into a rocket
	if toBeat.Category != Pair {
		categories = append(categories, Rocket)
	}
	beating := make([]Hand, 0)
	for _, candidate := range Classify(cards, categories...) {
		if IsBetter(candidate, toBeat) {
			beating = append(beating, candidate)
		}
	}
	return beating
}
