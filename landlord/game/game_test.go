package game_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/event"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/landlord/hand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noShuffle keeps the deck in generation order: seat i of the turn order gets
// every third card starting at index i, the face-up ace of spades goes to seat 0
// and the kitty holds the king of diamonds and both jokers.
func noShuffle(int, func(i, j int)) {}

type scripted struct {
	id      int64
	name    string
	bids    []int
	play    func(prompt game.Prompt) game.Action
	vote    game.Action
	prompts []game.Prompt
}

func (p *scripted) ID() int64 {
	return p.id
}

func (p *scripted) Name() string {
	return p.name
}

func (p *scripted) Choose(prompt game.Prompt) (game.Action, error) {
	p.prompts = append(p.prompts, prompt)
	switch prompt.Kind {
	case game.PromptBid:
		if len(p.bids) == 0 {
			return game.Pass(), nil
		}
		amount := p.bids[0]
		p.bids = p.bids[1:]
		if amount == consts.BidPass {
			return game.Pass(), nil
		}
		return game.Bid(amount), nil
	case game.PromptPlay:
		if p.play == nil {
			return passOrLowest(prompt), nil
		}
		return p.play(prompt), nil
	case game.PromptContinue:
		return p.vote, nil
	}
	return game.Action{}, errors.New("unexpected prompt")
}

func (p *scripted) count(kind game.PromptKind) int {
	n := 0
	for _, prompt := range p.prompts {
		if prompt.Kind == kind {
			n++
		}
	}
	return n
}

// lowestSolo plays the weakest single card it is allowed to play.
func lowestSolo(prompt game.Prompt) game.Action {
	for _, candidate := range prompt.Candidates {
		if candidate.Category == hand.Solo && !candidate.IsChain() {
			return game.Play(candidate)
		}
	}
	return game.Pass()
}

func passOrLowest(prompt game.Prompt) game.Action {
	if prompt.CanPass() {
		return game.Pass()
	}
	return lowestSolo(prompt)
}

func firstRocketThenSolos(prompt game.Prompt) game.Action {
	for _, candidate := range prompt.Candidates {
		if candidate.Category == hand.Rocket {
			return game.Play(candidate)
		}
	}
	return lowestSolo(prompt)
}

// selectLowest walks the interactive path: select the weakest card, then play
// as soon as the selection forms a hand.
func selectLowest(prompt game.Prompt) game.Action {
	if len(prompt.Matches) > 0 {
		return game.Play(prompt.Matches[0])
	}
	return game.Select(prompt.Selectable[0])
}

func newPlayers() []*scripted {
	return []*scripted{
		{id: 1, name: "Landlord", vote: game.Continue()},
		{id: 2, name: "Annie", vote: game.Continue()},
		{id: 3, name: "Braum", vote: game.Continue()},
	}
}

func newGame(t *testing.T, players []*scripted, opts ...game.Option) *game.Game {
	seats := make([]game.Player, 0, len(players))
	for _, p := range players {
		seats = append(seats, p)
	}
	g, err := game.New(seats, append([]game.Option{game.WithShuffle(noShuffle)}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	players := newPlayers()

	_, err := game.New([]game.Player{players[0], players[1]})
	require.True(t, errors.Is(err, consts.ErrorsGamePlayersInvalid))

	_, err = game.New([]game.Player{players[0], players[1], players[0]})
	require.True(t, errors.Is(err, consts.ErrorsGamePlayersInvalid))

	g := newGame(t, players)
	require.Equal(t, []int64{1, 2, 3}, g.TurnOrder().IDs())
	require.Equal(t, []int64{0, 0, 0}, g.Scores())
}

func TestLandlordWins(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{2}
	players[0].play = lowestSolo
	listener := event.NewDummyListener()
	g := newGame(t, players, game.WithMaxRounds(1), game.WithListeners(listener))

	result, err := g.Run()
	require.NoError(t, err)
	require.Equal(t, []int64{4, -2, -2}, result.Scores)
	require.Equal(t, 1, result.Rounds)
	require.False(t, result.Resigned)
	require.Equal(t, result.Scores, g.Scoreboard().Scores())

	// the kitty brings the landlord to 20 cards, played one per trick
	require.Equal(t, 20, players[0].count(game.PromptPlay))
	// peasants in debt are asked, the landlord is not
	assert.Equal(t, 0, players[0].count(game.PromptContinue))
	assert.Equal(t, 1, players[1].count(game.PromptContinue))
	assert.Equal(t, 1, players[2].count(game.PromptContinue))

	var landlordChosen *event.LandlordChosenPayload
	var firstBidder *event.FirstBidderChosenPayload
	tricks := 0
	for _, payload := range listener.ReceivedPayloads() {
		switch payload := payload.(type) {
		case event.LandlordChosenPayload:
			landlordChosen = &payload
		case event.FirstBidderChosenPayload:
			firstBidder = &payload
		case event.TrickWonPayload:
			require.Equal(t, "Landlord", payload.PlayerName)
			tricks++
		}
	}
	require.NotNil(t, firstBidder)
	require.Equal(t, "Landlord", firstBidder.PlayerName)
	require.Equal(t, card.RankAce, firstBidder.FaceUp.Rank)
	require.NotNil(t, landlordChosen)
	require.Equal(t, 2, landlordChosen.Bid)
	require.Len(t, landlordChosen.Kitty, consts.KittyCards)
	require.True(t, landlordChosen.Kitty.HasJoker())
	require.Equal(t, 19, tricks)

	last := listener.ReceivedPayloads()[len(listener.ReceivedPayloads())-1]
	require.IsType(t, event.GameOverPayload{}, last)
}

func TestPeasantsWin(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{1}
	players[0].play = passOrLowest
	players[1].play = lowestSolo

	g := newGame(t, players, game.WithMaxRounds(1))
	result, err := g.Run()
	require.NoError(t, err)
	require.Equal(t, []int64{-2, 1, 1}, result.Scores)
	require.Equal(t, 1, players[0].count(game.PromptContinue))
}

func TestBombDoublesBid(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{2}
	players[0].play = firstRocketThenSolos
	listener := event.NewDummyListener()

	g := newGame(t, players, game.WithMaxRounds(1), game.WithListeners(listener))
	result, err := g.Run()
	require.NoError(t, err)
	require.Equal(t, []int64{8, -4, -4}, result.Scores)

	for _, payload := range listener.ReceivedPayloads() {
		if played, ok := payload.(event.HandPlayedPayload); ok {
			require.Equal(t, hand.Rocket, played.Hand.Category)
			require.Equal(t, 4, played.Bid)
			break
		}
	}
}

func TestInteractiveSelection(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{3}
	players[0].play = selectLowest

	g := newGame(t, players, game.WithMaxRounds(1))
	result, err := g.Run()
	require.NoError(t, err)
	require.Equal(t, []int64{6, -3, -3}, result.Scores)
	// one select plus one play per card
	require.Equal(t, 40, players[0].count(game.PromptPlay))
}

func TestResignation(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{2, 2}
	players[0].play = lowestSolo
	players[2].vote = game.Resign()

	g := newGame(t, players)
	result, err := g.Run()
	require.NoError(t, err)
	require.True(t, result.Resigned)
	require.Equal(t, 1, result.Rounds)
	require.Equal(t, []int64{4, -2, -2}, result.Scores)
}

func TestVoidRoundIsDealtAgain(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{consts.BidPass, 1}
	players[0].play = lowestSolo
	listener := event.NewDummyListener()

	g := newGame(t, players, game.WithMaxRounds(1), game.WithListeners(listener))
	result, err := g.Run()
	require.NoError(t, err)
	require.Equal(t, 1, result.Rounds)
	require.Equal(t, []int64{2, -1, -1}, result.Scores)

	voided, started := 0, 0
	for _, payload := range listener.ReceivedPayloads() {
		switch payload.(type) {
		case event.RoundVoidedPayload:
			voided++
		case event.RoundStartedPayload:
			started++
		}
	}
	require.Equal(t, 1, voided)
	require.Equal(t, 2, started)
}

func TestPlayRound(t *testing.T) {
	players := newPlayers()
	g := newGame(t, players)

	outcome, err := g.PlayRound()
	require.NoError(t, err)
	require.Equal(t, game.RoundVoid, outcome)
	require.Equal(t, []int64{0, 0, 0}, g.Scores())

	players[1].bids = []int{3}
	players[1].play = lowestSolo
	outcome, err = g.PlayRound()
	require.NoError(t, err)
	require.Equal(t, game.RoundCompleted, outcome)
	require.Equal(t, []int64{-3, 6, -3}, g.Scores())
}

func TestIllegalActionAborts(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{1}
	players[0].play = func(prompt game.Prompt) game.Action {
		return game.Pass()
	}

	g := newGame(t, players, game.WithMaxRounds(1))
	_, err := g.Run()
	require.True(t, errors.Is(err, consts.ErrorsIllegalAction))
}

func TestBidPrompt(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{1}
	players[1].bids = []int{consts.BidPass}
	players[2].bids = []int{consts.MaxBid}
	players[2].play = lowestSolo

	g := newGame(t, players, game.WithMaxRounds(1))
	_, err := g.Run()
	require.NoError(t, err)

	first := players[0].prompts[0]
	require.Equal(t, game.PromptBid, first.Kind)
	require.Equal(t, []int{1, 2, 3, 0}, first.BidOptions)
	require.True(t, first.Offers(game.Bid(3)))
	require.True(t, first.CanPass())
	require.Len(t, first.State.CurrentHand, consts.HandCards)

	second := players[1].prompts[0]
	require.Equal(t, []int{2, 3, 0}, second.BidOptions)
	require.False(t, second.Offers(game.Bid(1)))
}

func TestWithEmitters(t *testing.T) {
	players := newPlayers()
	players[0].bids = []int{1}
	players[0].play = lowestSolo
	emitters := event.NewEmitters()
	listener := event.NewDummyListener()
	emitters.AddListener(listener)

	g := newGame(t, players, game.WithMaxRounds(1), game.WithEmitters(emitters))
	_, err := g.Run()
	require.NoError(t, err)
	require.NotEmpty(t, listener.ReceivedPayloads())
	require.IsType(t, event.RoundStartedPayload{}, listener.ReceivedPayloads()[0])
}
