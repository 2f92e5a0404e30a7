package hand

import (
	"github.com/ratel-online/landlord/landlord/card"
)

// nextInChain returns the rank that may follow r in a chain. King is followed by
// the ace, the ace ends a chain, and twos and jokers never chain.
func nextInChain(r card.Rank) (card.Rank, bool) {
	switch {
	case r == card.RankKing:
		return card.RankAce, true
	case r >= card.RankThree && r < card.RankKing:
		return r + 1, true
	}
	return 0, false
}

// extendChains grows chains out of the plain hands of one category. The arena is
// append-only: plains occupy [0, len(plains)) and are the only right-hand
// candidates, every merged chain is appended and later serves as a left-hand base.
func extendChains(category *Category, plains []Hand) []Hand {
	arena := make([]Hand, len(plains), len(plains)*2)
	copy(arena, plains)

	byRank := map[card.Rank][]int{}
	for i, plain := range plains {
		rank := plain.Chain[0].Rank()
		byRank[rank] = append(byRank[rank], i)
	}

	chains := make([]Hand, 0)
	for i := 0; i < len(arena); i++ {
		base := arena[i]
		next, ok := nextInChain(base.Trailing())
		if !ok {
			continue
		}
		for _, j := range byRank[next] {
			element := arena[j].Chain[0]
			if category.Kicker != KickerNone && reusesRank(base, element) {
				continue
			}
			merged := base.extend(element)
			arena = append(arena, merged)
			if len(merged.Chain) >= category.MinChainCount {
				chains = append(chains, merged)
			}
		}
	}
	return chains
}

// reusesRank reports whether appending element to chain would give a rank a
// second role: its primal already used as a kicker, or its kickers already used
// as a primal or a kicker.
func reusesRank(chain Hand, element ChainElement) bool {
	primals := chain.primalRanks()
	kickers := chain.kickerRanks()
	if containsRank(kickers, element.Rank()) {
		return true
	}
	for _, rank := range element.KickerRanks() {
		if containsRank(primals, rank) || containsRank(kickers, rank) {
			return true
		}
	}
	return false
}
