package game

import (
	"fmt"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/hand"
)

type playerController struct {
	player Player
	hand   card.Cards
	bid    int
	team   int
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   make(card.Cards, 0, consts.HandCards+consts.KittyCards),
		bid:    consts.BidUnset,
		team:   consts.TeamNone,
	}
}

func (c *playerController) ID() int64 {
	return c.player.ID()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand = append(c.hand, cards...)
	c.hand.Sort()
}

func (c *playerController) Hand() card.Cards {
	cards := make(card.Cards, len(c.hand))
	copy(cards, c.hand)
	return cards
}

// RemoveAll empties the hand and returns what it held.
func (c *playerController) RemoveAll() card.Cards {
	cards := c.hand
	c.hand = make(card.Cards, 0, consts.HandCards+consts.KittyCards)
	return cards
}

func (c *playerController) NoCards() bool {
	return len(c.hand) == 0
}

func (c *playerController) IsLandlord() bool {
	return c.team == consts.TeamLandlord
}

func (c *playerController) choose(prompt Prompt) (Action, error) {
	action, err := c.player.Choose(prompt)
	if err != nil {
		return action, fmt.Errorf("player %s: %w", c.Name(), err)
	}
	if !prompt.Offers(action) {
		return action, fmt.Errorf("player %s chose %s: %w", c.Name(), action, consts.ErrorsIllegalAction)
	}
	return action, nil
}

// Play lets the player build a hand out of candidates one card at a time. A nil
// hand means the player passed.
func (c *playerController) Play(state State, candidates []hand.Hand, canPass bool) (*hand.Hand, error) {
	selected := make(card.Cards, 0)
	for {
		selection := hand.Filter(candidates, selected)
		action, err := c.choose(playPrompt(state, candidates, selected, selection, canPass))
		if err != nil {
			return nil, err
		}
		switch action.Kind {
		case ActionSelect:
			selected = append(selected, action.Card)
		case ActionDeselect:
			selected = selected.Without(action.Card)
		case ActionDeselectAll:
			selected = make(card.Cards, 0)
		case ActionPlay:
			for _, candidate := range candidates {
				if candidate.Equal(*action.Hand) {
					c.hand = c.hand.Without(candidate.Cards()...)
					return &candidate, nil
				}
			}
		case ActionPass:
			return nil, nil
		}
	}
}
