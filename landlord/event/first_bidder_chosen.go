package event

import "github.com/ratel-online/landlord/landlord/card"

type FirstBidderChosenPayload struct {
	PlayerName string
	FaceUp     card.Card
	InKitty    bool
}

type FirstBidderChosenListener interface {
	OnFirstBidderChosen(FirstBidderChosenPayload)
}

type firstBidderChosenEmitter struct {
	listeners []FirstBidderChosenListener
}

func (e *firstBidderChosenEmitter) AddListener(listener FirstBidderChosenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *firstBidderChosenEmitter) Emit(payload FirstBidderChosenPayload) {
	for _, listener := range e.listeners {
		listener.OnFirstBidderChosen(payload)
	}
}
