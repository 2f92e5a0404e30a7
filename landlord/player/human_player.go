package player

import (
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/landlord/ui"
)

// humanPlayer reads decisions from the console. Typed cards are fed to the
// table one selection at a time.
type humanPlayer struct {
	basicPlayer
	pending card.Cards
}

func NewHumanPlayer(id int64, name string) game.Player {
	return &humanPlayer{basicPlayer: basicPlayer{id: id, name: name}}
}

func (p *humanPlayer) Choose(prompt game.Prompt) (game.Action, error) {
	switch prompt.Kind {
	case game.PromptBid:
		ui.Message.HumanPlayerTurnStarted(p.name)
		ui.Println(prompt.State)
		return ui.PromptAction("How much do you bid?", prompt.Actions)
	case game.PromptContinue:
		ui.Println(prompt.State)
		return ui.PromptAction("You are behind. Keep playing?", prompt.Actions)
	}
	return p.play(prompt)
}

func (p *humanPlayer) play(prompt game.Prompt) (game.Action, error) {
	if len(p.pending) == 0 && len(prompt.Selected) == 0 {
		ui.Message.HumanPlayerTurnStarted(p.name)
		ui.Println(prompt.State)
		cards, pass, err := ui.PromptCards(prompt.State.CurrentHand, prompt.CanPass())
		if err != nil {
			return game.Action{}, err
		}
		if pass {
			return game.Pass(), nil
		}
		p.pending = cards
	}

	if len(p.pending) > 0 {
		next := p.pending[0]
		if prompt.Selectable.Contains(next) {
			p.pending = p.pending[1:]
			return game.Select(next), nil
		}
		return p.reject(prompt)
	}

	switch len(prompt.Matches) {
	case 0:
		return p.reject(prompt)
	case 1:
		return game.Play(prompt.Matches[0]), nil
	}
	plays := make([]game.Action, 0, len(prompt.Matches))
	for _, match := range prompt.Matches {
		plays = append(plays, game.Play(match))
	}
	return ui.PromptAction("Play these cards as:", plays)
}

// reject drops a selection that forms no playable hand and asks again.
func (p *humanPlayer) reject(prompt game.Prompt) (game.Action, error) {
	ui.Println("Those cards can't be played now")
	p.pending = nil
	if len(prompt.Selected) > 0 {
		return game.DeselectAll(), nil
	}
	return p.play(prompt)
}
