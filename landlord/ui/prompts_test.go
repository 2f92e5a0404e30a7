package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/landlord/ui"
	"github.com/stretchr/testify/require"
)

func withConsole(t *testing.T, input string) *bytes.Buffer {
	output := &bytes.Buffer{}
	previousInput, previousOutput := ui.Input, ui.Output
	ui.Input, ui.Output = strings.NewReader(input), output
	t.Cleanup(func() {
		ui.Input, ui.Output = previousInput, previousOutput
	})
	return output
}

var testHand = card.Cards{
	card.New(2, card.RankThree, card.SuitSpade),
	card.New(15, card.RankThree, card.SuitHeart),
	card.New(3, card.RankFour, card.SuitSpade),
}

func TestParseCards(t *testing.T) {
	scenarios := []struct {
		description string
		aliases     string
		cards       card.Cards
		err         error
	}{
		{description: "pair_and_solo", aliases: "334", cards: testHand},
		{description: "single", aliases: "4", cards: card.Cards{testHand[2]}},
		{description: "missing_rank", aliases: "5", err: consts.ErrorsPokersFacesInvalid},
		{description: "too_many", aliases: "333", err: consts.ErrorsPokersFacesInvalid},
		{description: "empty", aliases: "", err: consts.ErrorsInputInvalid},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			cards, err := ui.ParseCards(scenario.aliases, testHand)
			if scenario.err != nil {
				require.True(t, errors.Is(err, scenario.err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.cards, cards)
		})
	}
}

func TestPromptCards(t *testing.T) {
	t.Run("pass_when_allowed", func(t *testing.T) {
		withConsole(t, "p\n")
		_, pass, err := ui.PromptCards(testHand, true)
		require.NoError(t, err)
		require.True(t, pass)
	})

	t.Run("must_play_when_opening", func(t *testing.T) {
		output := withConsole(t, "p\n4\n")
		cards, pass, err := ui.PromptCards(testHand, false)
		require.NoError(t, err)
		require.False(t, pass)
		require.Equal(t, card.Cards{testHand[2]}, cards)
		require.Contains(t, output.String(), consts.ErrorsHaveToPlay.Error())
	})

	t.Run("closed_input", func(t *testing.T) {
		withConsole(t, "")
		_, _, err := ui.PromptCards(testHand, true)
		require.True(t, errors.Is(err, consts.ErrorsChanClosed))
	})
}

func TestPromptAction(t *testing.T) {
	output := withConsole(t, "x\nb\n")
	action, err := ui.PromptAction("Continue?", []game.Action{game.Continue(), game.Resign()})
	require.NoError(t, err)
	require.Equal(t, game.ActionResign, action.Kind)
	require.Contains(t, output.String(), "No action assigned to 'X'")
	require.Contains(t, output.String(), "Resign (enter B)")
}
