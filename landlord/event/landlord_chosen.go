package event

import "github.com/ratel-online/landlord/landlord/card"

type LandlordChosenPayload struct {
	PlayerName string
	Bid        int
	Kitty      card.Cards
}

type LandlordChosenListener interface {
	OnLandlordChosen(LandlordChosenPayload)
}

type landlordChosenEmitter struct {
	listeners []LandlordChosenListener
}

func (e *landlordChosenEmitter) AddListener(listener LandlordChosenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *landlordChosenEmitter) Emit(payload LandlordChosenPayload) {
	for _, listener := range e.listeners {
		listener.OnLandlordChosen(payload)
	}
}
