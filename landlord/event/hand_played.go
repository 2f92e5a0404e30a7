package event

import "github.com/ratel-online/landlord/landlord/hand"

type HandPlayedPayload struct {
	PlayerName string
	Hand       hand.Hand
	CardsLeft  int
	Bid        int
}

type HandPlayedListener interface {
	OnHandPlayed(HandPlayedPayload)
}

type handPlayedEmitter struct {
	listeners []HandPlayedListener
}

func (e *handPlayedEmitter) AddListener(listener HandPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handPlayedEmitter) Emit(payload HandPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnHandPlayed(payload)
	}
}
