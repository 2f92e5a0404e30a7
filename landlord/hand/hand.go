package hand

import (
	"fmt"
	"strings"

	"github.com/ratel-online/landlord/landlord/card"
)

// ChainElement is one primal group and the kicker cards attached to it.
type ChainElement struct {
	Primal card.Cards
	Kicker card.Cards
}

// Rank is the grouping rank of the primal cards.
func (e ChainElement) Rank() card.Rank {
	return groupOf(e.Primal[0])
}

func (e ChainElement) KickerRanks() []card.Rank {
	ranks := make([]card.Rank, 0, len(e.Kicker))
	for _, kicker := range e.Kicker {
		rank := groupOf(kicker)
		if !containsRank(ranks, rank) {
			ranks = append(ranks, rank)
		}
	}
	return ranks
}

func (e ChainElement) Cards() card.Cards {
	cards := make(card.Cards, 0, len(e.Primal)+len(e.Kicker))
	cards = append(cards, e.Primal...)
	return append(cards, e.Kicker...)
}

func (e ChainElement) String() string {
	if len(e.Kicker) == 0 {
		return e.Primal.String()
	}
	return fmt.Sprintf("%s+%s", e.Primal, e.Kicker)
}

// Hand is a category plus a non-empty chain ordered by ascending primal rank.
// A single element is a plain hand, more elements make a chain.
type Hand struct {
	Category *Category
	Chain    []ChainElement
}

func (h Hand) IsChain() bool {
	return len(h.Chain) > 1
}

func (h Hand) Cards() card.Cards {
	cards := make(card.Cards, 0, h.Size())
	for _, element := range h.Chain {
		cards = append(cards, element.Cards()...)
	}
	return cards
}

func (h Hand) Size() int {
	size := 0
	for _, element := range h.Chain {
		size += len(element.Primal) + len(element.Kicker)
	}
	return size
}

// Leading is the strongest primal card of the first chain element.
func (h Hand) Leading() card.Card {
	leading := h.Chain[0].Primal[0]
	for _, primal := range h.Chain[0].Primal[1:] {
		if card.Compare(primal, leading) > 0 {
			leading = primal
		}
	}
	return leading
}

func (h Hand) Trailing() card.Rank {
	return h.Chain[len(h.Chain)-1].Rank()
}

// IsBomb reports whether the hand carries override beating power.
func (h Hand) IsBomb() bool {
	return h.Category == Bomb || h.Category == Rocket
}

func (h Hand) Equal(other Hand) bool {
	if h.Category != other.Category || len(h.Chain) != len(other.Chain) {
		return false
	}
	for i, element := range h.Chain {
		if !element.Primal.SameSet(other.Chain[i].Primal) || !element.Kicker.SameSet(other.Chain[i].Kicker) {
			return false
		}
	}
	return true
}

func (h Hand) String() string {
	elements := make([]string, 0, len(h.Chain))
	for _, element := range h.Chain {
		elements = append(elements, element.String())
	}
	return fmt.Sprintf("%s %s", h.Category, strings.Join(elements, " "))
}

func (h Hand) primalRanks() []card.Rank {
	ranks := make([]card.Rank, 0, len(h.Chain))
	for _, element := range h.Chain {
		ranks = append(ranks, element.Rank())
	}
	return ranks
}

func (h Hand) kickerRanks() []card.Rank {
	ranks := make([]card.Rank, 0)
	for _, element := range h.Chain {
		ranks = append(ranks, element.KickerRanks()...)
	}
	return ranks
}

func (h Hand) extend(element ChainElement) Hand {
	chain := make([]ChainElement, 0, len(h.Chain)+1)
	chain = append(chain, h.Chain...)
	return Hand{Category: h.Category, Chain: append(chain, element)}
}

// groupOf folds both jokers into one group so that they can pair into a rocket.
func groupOf(c card.Card) card.Rank {
	if c.IsJoker() {
		return card.RankBlackJoker
	}
	return c.Rank
}

func containsRank(ranks []card.Rank, rank card.Rank) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}
