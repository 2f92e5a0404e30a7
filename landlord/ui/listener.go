package ui

import (
	"github.com/ratel-online/landlord/landlord/event"
)

// ConsoleListener narrates every event of a match on the console.
type ConsoleListener struct{}

func (ConsoleListener) OnRoundStarted(payload event.RoundStartedPayload) {
	Message.RoundStarted(payload.Round, payload.PlayerNames)
}

func (ConsoleListener) OnFirstBidderChosen(payload event.FirstBidderChosenPayload) {
	Message.FirstBidderChosen(payload.PlayerName, payload.FaceUp, payload.InKitty)
}

func (ConsoleListener) OnBidPlaced(payload event.BidPlacedPayload) {
	Message.BidPlaced(payload.PlayerName, payload.Bid)
}

func (ConsoleListener) OnRoundVoided(payload event.RoundVoidedPayload) {
	Message.RoundVoided(payload.Round)
}

func (ConsoleListener) OnLandlordChosen(payload event.LandlordChosenPayload) {
	Message.LandlordChosen(payload.PlayerName, payload.Bid, payload.Kitty)
}

func (ConsoleListener) OnHandPlayed(payload event.HandPlayedPayload) {
	Message.HandPlayed(payload.PlayerName, payload.Hand, payload.CardsLeft, payload.Bid)
}

func (ConsoleListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Message.PlayerPassed(payload.PlayerName, payload.Auto)
}

func (ConsoleListener) OnTrickWon(payload event.TrickWonPayload) {
	Message.TrickWon(payload.PlayerName)
}

func (ConsoleListener) OnRoundScored(payload event.RoundScoredPayload) {
	Message.RoundScored(payload.LandlordName, payload.LandlordWon, payload.Bid, payload.Scores)
}

func (ConsoleListener) OnPlayerResigned(payload event.PlayerResignedPayload) {
	Message.PlayerResigned(payload.PlayerName)
}

func (ConsoleListener) OnGameOver(payload event.GameOverPayload) {
	Message.GameOver(payload.Rounds, payload.Scores)
}
