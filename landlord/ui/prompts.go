package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/core/util/poker"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
)

func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Input, &input)
		if errors.Is(err, io.EOF) {
			return "", consts.ErrorsChanClosed
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

func promptLowercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToLower(input), err
}

// PromptAction lets the player pick one of actions by its letter.
func PromptAction(title string, actions []game.Action) (game.Action, error) {
	runeSequence := runeSequence{}
	labels := make([]string, 0, len(actions))
	actionOptions := make(map[string]game.Action, len(actions))
	for _, action := range actions {
		label := string(runeSequence.next())
		labels = append(labels, label)
		actionOptions[label] = action
	}

	actionSelectionLines := []string{title}
	for _, label := range labels {
		actionSelectionLines = append(actionSelectionLines, fmt.Sprintf("%s (enter %s)", actionOptions[label], label))
	}
	actionSelectionMessage := strings.Join(actionSelectionLines, "\n")

	for {
		selectedLabel, err := promptUppercaseString(actionSelectionMessage)
		if err != nil {
			return game.Action{}, err
		}
		selectedAction, found := actionOptions[selectedLabel]
		if !found {
			Printfln("No action assigned to '%s'", selectedLabel)
			continue
		}
		return selectedAction, nil
	}
}

// PromptCards reads the cards to play as rank aliases, one character per card
// (e.g. "334"), or "p" to pass. Ranks the hand holds too few of are rejected.
func PromptCards(hand card.Cards, canPass bool) (cards card.Cards, pass bool, err error) {
	for {
		input, err := promptLowercaseString("Enter the cards to play, or 'p' to pass:")
		if err != nil {
			return nil, false, err
		}
		if input == "p" || input == "pass" {
			if canPass {
				return nil, true, nil
			}
			Printfln("%s", consts.ErrorsHaveToPlay.Error())
			continue
		}
		cards, err = ParseCards(input, hand)
		if err != nil {
			Printfln("%s", err.Error())
			continue
		}
		return cards, false, nil
	}
}

// ParseCards picks the cards named by aliases out of hand.
func ParseCards(aliases string, hand card.Cards) (card.Cards, error) {
	available := make(map[card.Rank]card.Cards)
	for _, c := range hand {
		available[c.Rank] = append(available[c.Rank], c)
	}
	cards := make(card.Cards, 0, len(aliases))
	for _, alias := range aliases {
		key := poker.GetKey(string(alias))
		if key == 0 {
			return nil, consts.ErrorsPokersFacesInvalid
		}
		rank := card.Rank(key)
		if len(available[rank]) == 0 {
			return nil, consts.ErrorsPokersFacesInvalid
		}
		cards = append(cards, available[rank][0])
		available[rank] = available[rank][1:]
	}
	if len(cards) == 0 {
		return nil, consts.ErrorsInputInvalid
	}
	return cards, nil
}

// Aliases renders cards the way ParseCards reads them.
func Aliases(cards card.Cards) string {
	aliases := make([]string, 0, len(cards))
	for _, c := range cards {
		aliases = append(aliases, poker.GetAlias(int(c.Rank)))
	}
	return strings.Join(aliases, "")
}
