package hand

import (
	"github.com/ratel-online/landlord/landlord/card"
)

// Selection is what remains possible after a partial card selection.
type Selection struct {
	// Remaining holds the candidates that contain every selected card.
	Remaining []Hand
	// Selectable holds the unselected cards that keep at least one candidate alive.
	Selectable card.Cards
	// Matches holds the candidates made of exactly the selected cards.
	Matches []Hand
}

func (s Selection) Complete() bool {
	return len(s.Matches) > 0
}

// Filter narrows candidates down to those consistent with selection.
func Filter(candidates []Hand, selection []card.Card) Selection {
	result := Selection{
		Remaining:  make([]Hand, 0),
		Selectable: make(card.Cards, 0),
		Matches:    make([]Hand, 0),
	}
	selected := card.Cards(selection)
	for _, candidate := range candidates {
		cards := candidate.Cards()
		if !containsAll(cards, selected) {
			continue
		}
		result.Remaining = append(result.Remaining, candidate)
		if len(cards) == len(selected) {
			result.Matches = append(result.Matches, candidate)
		}
		for _, c := range cards {
			if !selected.Contains(c) && !result.Selectable.Contains(c) {
				result.Selectable = append(result.Selectable, c)
			}
		}
	}
	result.Selectable.Sort()
	return result
}

func containsAll(cards card.Cards, subset card.Cards) bool {
	for _, c := range subset {
		if !cards.Contains(c) {
			return false
		}
	}
	return true
}
