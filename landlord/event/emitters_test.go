package event_test

import (
	"testing"

	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/event"
	"github.com/stretchr/testify/require"
)

type passCounter struct {
	passes int
}

func (c *passCounter) OnPlayerPassed(event.PlayerPassedPayload) {
	c.passes++
}

func TestEmittersAddListener(t *testing.T) {
	emitters := event.NewEmitters()
	dummy := event.NewDummyListener()
	counter := &passCounter{}
	emitters.AddListener(dummy)
	emitters.AddListener(counter)

	payloads := []interface{}{
		event.RoundStartedPayload{Round: 1, PlayerNames: []string{"A", "B", "C"}},
		event.FirstBidderChosenPayload{PlayerName: "B", FaceUp: card.New(7, card.RankEight, card.SuitSpade)},
		event.BidPlacedPayload{PlayerName: "B", Bid: 2},
		event.LandlordChosenPayload{PlayerName: "B", Bid: 2, Kitty: card.Cards{card.New(0, card.RankAce, card.SuitSpade)}},
		event.PlayerPassedPayload{PlayerName: "C", Auto: true},
		event.TrickWonPayload{PlayerName: "B"},
		event.RoundScoredPayload{Round: 1, LandlordName: "B", LandlordWon: true, Bid: 2, Scores: []event.Score{{PlayerName: "B", Delta: 4, Total: 4}}},
		event.GameOverPayload{Rounds: 1},
	}
	emitters.RoundStarted.Emit(payloads[0].(event.RoundStartedPayload))
	emitters.FirstBidderChosen.Emit(payloads[1].(event.FirstBidderChosenPayload))
	emitters.BidPlaced.Emit(payloads[2].(event.BidPlacedPayload))
	emitters.LandlordChosen.Emit(payloads[3].(event.LandlordChosenPayload))
	emitters.PlayerPassed.Emit(payloads[4].(event.PlayerPassedPayload))
	emitters.TrickWon.Emit(payloads[5].(event.TrickWonPayload))
	emitters.RoundScored.Emit(payloads[6].(event.RoundScoredPayload))
	emitters.GameOver.Emit(payloads[7].(event.GameOverPayload))

	require.Equal(t, payloads, dummy.ReceivedPayloads())
	require.Equal(t, 1, counter.passes)
}

func TestEmittersAreIndependent(t *testing.T) {
	first, second := event.NewEmitters(), event.NewEmitters()
	listener := event.NewDummyListener()
	first.AddListener(listener)

	second.RoundVoided.Emit(event.RoundVoidedPayload{Round: 3})
	require.Empty(t, listener.ReceivedPayloads())

	first.RoundVoided.Emit(event.RoundVoidedPayload{Round: 3})
	first.PlayerResigned.Emit(event.PlayerResignedPayload{PlayerName: "A"})
	require.Len(t, listener.ReceivedPayloads(), 2)
}
