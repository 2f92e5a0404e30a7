package game

import (
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/hand"
)

type PromptKind int

const (
	_ PromptKind = iota
	PromptBid
	PromptPlay
	PromptContinue
)

// Prompt is one request for a decision. Actions lists what may be chosen right
// now; during play every hand in Candidates may also be played directly.
type Prompt struct {
	Kind    PromptKind
	State   State
	Actions []Action

	Selected   card.Cards
	Selectable card.Cards
	Candidates []hand.Hand
	Matches    []hand.Hand
	BidOptions []int
}

// Offers reports whether action is a legal answer to the prompt.
func (p Prompt) Offers(action Action) bool {
	for _, offered := range p.Actions {
		if offered.Equal(action) {
			return true
		}
	}
	if p.Kind == PromptPlay && action.Kind == ActionPlay && action.Hand != nil {
		for _, candidate := range p.Candidates {
			if candidate.Equal(*action.Hand) {
				return true
			}
		}
	}
	return false
}

// CanPass reports whether passing is offered.
func (p Prompt) CanPass() bool {
	return p.Offers(Pass())
}

func bidPrompt(state State, options []int) Prompt {
	actions := make([]Action, 0, len(options))
	for _, option := range options {
		if option == consts.BidPass {
			actions = append(actions, Pass())
		} else {
			actions = append(actions, Bid(option))
		}
	}
	return Prompt{Kind: PromptBid, State: state, Actions: actions, BidOptions: options}
}

func playPrompt(state State, candidates []hand.Hand, selected card.Cards, selection hand.Selection, canPass bool) Prompt {
	actions := make([]Action, 0)
	for _, c := range selection.Selectable {
		actions = append(actions, Select(c))
	}
	for _, c := range selected {
		actions = append(actions, Deselect(c))
	}
	if len(selected) > 0 {
		actions = append(actions, DeselectAll())
	}
	for _, match := range selection.Matches {
		actions = append(actions, Play(match))
	}
	if canPass {
		actions = append(actions, Pass())
	}
	return Prompt{
		Kind:       PromptPlay,
		State:      state,
		Actions:    actions,
		Selected:   selected,
		Selectable: selection.Selectable,
		Candidates: candidates,
		Matches:    selection.Matches,
	}
}

func continuePrompt(state State) Prompt {
	return Prompt{Kind: PromptContinue, State: state, Actions: []Action{Continue(), Resign()}}
}
