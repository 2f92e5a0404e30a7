package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/event"
	"github.com/ratel-online/landlord/landlord/hand"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln("WELCOME TO %s", color.New(color.FgHiRed).Sprint("LANDLORD"))
}

func (m MessageWriter) RoundStarted(round int, playerNames []string) {
	Printfln("Round %d start! Turn order: %s", round, strings.Join(playerNames, ", "))
}

func (m MessageWriter) FirstBidderChosen(playerName string, faceUp card.Card, inKitty bool) {
	if inKitty {
		Printfln("%s stayed in the kitty, %s bids first!", faceUp, playerName)
		return
	}
	Printfln("%s received %s and bids first!", playerName, faceUp)
}

func (m MessageWriter) BidPlaced(playerName string, bid int) {
	if bid == 0 {
		Printfln("%s drops out", playerName)
		return
	}
	Printfln("%s bids %d", playerName, bid)
}

func (m MessageWriter) RoundVoided(round int) {
	Printfln("Nobody bid in round %d, dealing again", round)
}

func (m MessageWriter) LandlordChosen(playerName string, bid int, kitty card.Cards) {
	Printfln("%s becomes the landlord with bid %d and takes %s!", playerName, bid, kitty)
}

func (m MessageWriter) HandPlayed(playerName string, played hand.Hand, cardsLeft int, bid int) {
	if played.IsBomb() {
		Printfln("%s played %s! Bid doubled to %d", playerName, played, bid)
	} else {
		Printfln("%s played %s", playerName, played)
	}
	if cardsLeft > 0 && cardsLeft <= 2 {
		Printfln("%s has only %d card(s) left!", playerName, cardsLeft)
	}
}

func (m MessageWriter) PlayerPassed(playerName string, auto bool) {
	if auto {
		Printfln("%s can't beat that and passes", playerName)
		return
	}
	Printfln("%s passed!", playerName)
}

func (m MessageWriter) TrickWon(playerName string) {
	Printfln("%s takes the trick", playerName)
}

func (m MessageWriter) RoundScored(landlordName string, landlordWon bool, bid int, scores []event.Score) {
	if landlordWon {
		Printfln("The landlord %s wins the round at bid %d!", landlordName, bid)
	} else {
		Printfln("The peasants beat %s at bid %d!", landlordName, bid)
	}
	m.scores(scores)
}

func (m MessageWriter) PlayerResigned(playerName string) {
	Printfln("%s resigned", playerName)
}

func (m MessageWriter) GameOver(rounds int, scores []event.Score) {
	Printfln("Game over after %d round(s)!", rounds)
	m.scores(scores)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) scores(scores []event.Score) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Change"))
	for _, score := range scores {
		change := ""
		if score.Delta != 0 {
			change = fmt.Sprintf("%+d", score.Delta)
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", score.PlayerName, score.Total, change))
	}
	Printfln("%s", strings.TrimRight(buf.String(), "\n"))
}
