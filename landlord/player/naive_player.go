package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/landlord/landlord/game"
)

// naivePlayer answers every prompt with a random legal choice.
type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(id int64, name string) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{id: id, name: name}}
}

func (p naivePlayer) Choose(prompt game.Prompt) (game.Action, error) {
	switch prompt.Kind {
	case game.PromptContinue:
		return game.Continue(), nil
	case game.PromptPlay:
		options := len(prompt.Candidates)
		if prompt.CanPass() {
			options++
		}
		choice := rand.Intn(options)
		if choice == len(prompt.Candidates) {
			return game.Pass(), nil
		}
		return game.Play(prompt.Candidates[choice]), nil
	}
	return prompt.Actions[rand.Intn(len(prompt.Actions))], nil
}
