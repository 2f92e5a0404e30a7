package hand

import (
	"sort"

	"github.com/ratel-online/landlord/landlord/card"
)

type groups struct {
	ranks []card.Rank
	cards map[card.Rank]card.Cards
}

func groupByRank(cards []card.Card) groups {
	g := groups{cards: map[card.Rank]card.Cards{}}
	for _, c := range cards {
		rank := groupOf(c)
		if _, ok := g.cards[rank]; !ok {
			g.ranks = append(g.ranks, rank)
		}
		g.cards[rank] = append(g.cards[rank], c)
	}
	sort.Slice(g.ranks, func(i, j int) bool {
		return card.Score(g.cards[g.ranks[i]][0]) < card.Score(g.cards[g.ranks[j]][0])
	})
	for _, rank := range g.ranks {
		g.cards[rank].Sort()
	}
	return g
}

// Classify enumerates every hand of the given categories (all enumerable categories
// when none are given) that can be formed from cards, chains included. Asking for a
// combination the cards cannot form yields an empty result, never an error.
func Classify(cards []card.Card, categories ...*Category) []Hand {
	if len(categories) == 0 {
		categories = Categories
	}
	g := groupByRank(cards)
	hands := make([]Hand, 0)
	for _, category := range categories {
		plains := make([]Hand, 0)
		for _, rank := range g.ranks {
			if category == Rocket && rank != card.RankBlackJoker {
				continue
			}
			for _, primal := range choices(g.cards[rank], category.PrimalCount) {
				for _, kicker := range kickers(category.Kicker, rank, g) {
					h := Hand{Category: category, Chain: []ChainElement{{Primal: primal, Kicker: kicker}}}
					if (category == Pair || category == Rocket) && rank == card.RankBlackJoker {
						h.Category = Rocket
						h.Chain[0].Kicker = card.Cards{}
						hands = append(hands, h)
						continue
					}
					hands = append(hands, h)
					plains = append(plains, h)
				}
			}
		}
		if category.Chainable() {
			hands = append(hands, extendChains(category, plains)...)
		}
	}
	return hands
}

func kickers(kickerType KickerType, primal card.Rank, g groups) []card.Cards {
	result := make([]card.Cards, 0)
	switch kickerType {
	case KickerNone:
		result = append(result, card.Cards{})
	case KickerSolo:
		for _, rank := range g.ranks {
			if rank == primal {
				continue
			}
			for _, c := range g.cards[rank] {
				result = append(result, card.Cards{c})
			}
		}
	case KickerPair:
		for _, rank := range g.ranks {
			if rank == primal || len(g.cards[rank]) < 2 {
				continue
			}
			result = append(result, choices(g.cards[rank], 2)...)
		}
	case KickerDualSolo:
		ranks := otherRanks(primal, g, 1)
		for _, pair := range combinations(len(ranks), 2) {
			for _, a := range g.cards[ranks[pair[0]]] {
				for _, b := range g.cards[ranks[pair[1]]] {
					result = append(result, card.Cards{a, b})
				}
			}
		}
	case KickerDualPair:
		ranks := otherRanks(primal, g, 2)
		for _, pair := range combinations(len(ranks), 2) {
			for _, a := range choices(g.cards[ranks[pair[0]]], 2) {
				for _, b := range choices(g.cards[ranks[pair[1]]], 2) {
					kicker := make(card.Cards, 0, 4)
					kicker = append(kicker, a...)
					result = append(result, append(kicker, b...))
				}
			}
		}
	}
	return result
}

func otherRanks(primal card.Rank, g groups, minCount int) []card.Rank {
	ranks := make([]card.Rank, 0, len(g.ranks))
	for _, rank := range g.ranks {
		if rank != primal && len(g.cards[rank]) >= minCount {
			ranks = append(ranks, rank)
		}
	}
	return ranks
}

// choices lists every count-sized subset of cards in lexicographic index order.
func choices(cards card.Cards, count int) []card.Cards {
	result := make([]card.Cards, 0)
	for _, indexes := range combinations(len(cards), count) {
		choice := make(card.Cards, 0, count)
		for _, i := range indexes {
			choice = append(choice, cards[i])
		}
		result = append(result, choice)
	}
	return result
}

func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return [][]int{}
	}
	result := make([][]int, 0)
	current := make([]int, 0, k)
	var walk func(first int)
	walk = func(first int) {
		if len(current) == k {
			combination := make([]int, k)
			copy(combination, current)
			result = append(result, combination)
			return
		}
		for i := first; i <= n-(k-len(current)); i++ {
			current = append(current, i)
			walk(i + 1)
			current = current[:len(current)-1]
		}
	}
	walk(0)
	return result
}
