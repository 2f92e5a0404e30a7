package card

var suits = []Suit{SuitSpade, SuitHeart, SuitClub, SuitDiamond}

// NewDeck returns the 54 cards of a single deck in a fixed order: four suits of
// A..K followed by the black and red jokers.
func NewDeck() Cards {
	cards := make(Cards, 0, 54)
	id := 0
	for _, suit := range suits {
		for rank := RankAce; rank <= RankKing; rank++ {
			cards = append(cards, New(id, rank, suit))
			id++
		}
	}
	cards = append(cards, New(id, RankBlackJoker, SuitNone))
	cards = append(cards, New(id+1, RankRedJoker, SuitNone))
	return cards
}
