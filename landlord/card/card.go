package card

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/core/util/poker"
)

// Rank uses the poker keys of ratel core: 1 is the ace, 2..13 are the face values,
// 14 and 15 are the black and red jokers.
type Rank int

const (
	RankAce Rank = iota + 1
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankBlackJoker
	RankRedJoker
)

func (r Rank) IsJoker() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

func (r Rank) String() string {
	return poker.GetDesc(int(r))
}

type Suit int

const (
	SuitNone Suit = iota
	SuitSpade
	SuitHeart
	SuitClub
	SuitDiamond
)

var suitSymbols = map[Suit]string{
	SuitNone:    "",
	SuitSpade:   "♠",
	SuitHeart:   "♥",
	SuitClub:    "♣",
	SuitDiamond: "♦",
}

func (s Suit) String() string {
	return suitSymbols[s]
}

var (
	red   = color.New(color.FgHiRed).SprintfFunc()
	black = color.New(color.FgHiWhite).SprintfFunc()
)

// Card is a physical card. ID is unique within a deck, so two cards of equal rank
// and suit from different decks stay distinct.
type Card struct {
	ID   int
	Rank Rank
	Suit Suit
}

func New(id int, rank Rank, suit Suit) Card {
	return Card{ID: id, Rank: rank, Suit: suit}
}

func (c Card) IsJoker() bool {
	return c.Rank.IsJoker()
}

func (c Card) IsRed() bool {
	return c.Suit == SuitHeart || c.Suit == SuitDiamond || c.Rank == RankRedJoker
}

func (c Card) String() string {
	if c.IsRed() {
		return red("%s%s", c.Rank, c.Suit)
	}
	return black("%s%s", c.Rank, c.Suit)
}

// Score orders ranks for comparisons: 3..K keep their value, then A, 2, black joker
// and red joker.
func Score(c Card) int {
	switch c.Rank {
	case RankAce:
		return int(RankKing) + 1
	case RankTwo:
		return int(RankKing) + 2
	case RankBlackJoker:
		return int(RankKing) + 3
	case RankRedJoker:
		return int(RankKing) + 4
	default:
		return int(c.Rank)
	}
}

func Compare(a, b Card) int {
	return sign(Score(a) - Score(b))
}

// AutoSortCompare is Compare tiebroken by suit, used to keep hands in display order.
func AutoSortCompare(a, b Card) int {
	if cmp := Compare(a, b); cmp != 0 {
		return cmp
	}
	return sign(int(a.Suit) - int(b.Suit))
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

type Cards []Card

func (cs Cards) Sort() {
	sort.SliceStable(cs, func(i, j int) bool {
		return AutoSortCompare(cs[i], cs[j]) < 0
	})
}

func (cs Cards) Contains(c Card) bool {
	for _, card := range cs {
		if card == c {
			return true
		}
	}
	return false
}

func (cs Cards) IndexOf(c Card) int {
	for i, card := range cs {
		if card == c {
			return i
		}
	}
	return -1
}

// Without returns a copy of cs minus every card in removed.
func (cs Cards) Without(removed ...Card) Cards {
	rest := make(Cards, 0, len(cs))
	for _, card := range cs {
		if !Cards(removed).Contains(card) {
			rest = append(rest, card)
		}
	}
	return rest
}

func (cs Cards) HasJoker() bool {
	for _, card := range cs {
		if card.IsJoker() {
			return true
		}
	}
	return false
}

// SameSet reports whether both slices hold exactly the same physical cards.
func (cs Cards) SameSet(other Cards) bool {
	if len(cs) != len(other) {
		return false
	}
	for _, card := range cs {
		if !other.Contains(card) {
			return false
		}
	}
	return true
}

func (cs Cards) String() string {
	parts := make([]string, 0, len(cs))
	for _, card := range cs {
		parts = append(parts, card.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
