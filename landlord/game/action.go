package game

import (
	"fmt"

	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/hand"
)

type ActionKind int

const (
	_ ActionKind = iota
	ActionBid
	ActionPass
	ActionSelect
	ActionDeselect
	ActionDeselectAll
	ActionPlay
	ActionContinue
	ActionResign
)

type Action struct {
	Kind ActionKind
	Bid  int
	Card card.Card
	Hand *hand.Hand
}

func Bid(amount int) Action {
	return Action{Kind: ActionBid, Bid: amount}
}

func Pass() Action {
	return Action{Kind: ActionPass}
}

func Select(c card.Card) Action {
	return Action{Kind: ActionSelect, Card: c}
}

func Deselect(c card.Card) Action {
	return Action{Kind: ActionDeselect, Card: c}
}

func DeselectAll() Action {
	return Action{Kind: ActionDeselectAll}
}

func Play(h hand.Hand) Action {
	return Action{Kind: ActionPlay, Hand: &h}
}

func Continue() Action {
	return Action{Kind: ActionContinue}
}

func Resign() Action {
	return Action{Kind: ActionResign}
}

func (a Action) Equal(other Action) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case ActionBid:
		return a.Bid == other.Bid
	case ActionSelect, ActionDeselect:
		return a.Card == other.Card
	case ActionPlay:
		return a.Hand != nil && other.Hand != nil && a.Hand.Equal(*other.Hand)
	}
	return true
}

func (a Action) String() string {
	switch a.Kind {
	case ActionBid:
		return fmt.Sprintf("Bid %d", a.Bid)
	case ActionPass:
		return "Pass"
	case ActionSelect:
		return fmt.Sprintf("Select %s", a.Card)
	case ActionDeselect:
		return fmt.Sprintf("Deselect %s", a.Card)
	case ActionDeselectAll:
		return "Deselect all"
	case ActionPlay:
		if a.Hand == nil {
			return "Play"
		}
		return fmt.Sprintf("Play %s", a.Hand)
	case ActionContinue:
		return "Continue"
	case ActionResign:
		return "Resign"
	}
	return "Unknown"
}
