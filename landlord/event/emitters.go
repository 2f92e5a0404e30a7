package event

// Emitters bundles one emitter per event. A round receives it explicitly.
type Emitters struct {
	RoundStarted      *roundStartedEmitter
	FirstBidderChosen *firstBidderChosenEmitter
	BidPlaced         *bidPlacedEmitter
	RoundVoided       *roundVoidedEmitter
	LandlordChosen    *landlordChosenEmitter
	HandPlayed        *handPlayedEmitter
	PlayerPassed      *playerPassedEmitter
	TrickWon          *trickWonEmitter
	RoundScored       *roundScoredEmitter
	PlayerResigned    *playerResignedEmitter
	GameOver          *gameOverEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		RoundStarted:      &roundStartedEmitter{},
		FirstBidderChosen: &firstBidderChosenEmitter{},
		BidPlaced:         &bidPlacedEmitter{},
		RoundVoided:       &roundVoidedEmitter{},
		LandlordChosen:    &landlordChosenEmitter{},
		HandPlayed:        &handPlayedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		TrickWon:          &trickWonEmitter{},
		RoundScored:       &roundScoredEmitter{},
		PlayerResigned:    &playerResignedEmitter{},
		GameOver:          &gameOverEmitter{},
	}
}

// AddListener subscribes listener to every event whose listener interface it implements.
func (e *Emitters) AddListener(listener interface{}) {
	if l, ok := listener.(RoundStartedListener); ok {
		e.RoundStarted.AddListener(l)
	}
	if l, ok := listener.(FirstBidderChosenListener); ok {
		e.FirstBidderChosen.AddListener(l)
	}
	if l, ok := listener.(BidPlacedListener); ok {
		e.BidPlaced.AddListener(l)
	}
	if l, ok := listener.(RoundVoidedListener); ok {
		e.RoundVoided.AddListener(l)
	}
	if l, ok := listener.(LandlordChosenListener); ok {
		e.LandlordChosen.AddListener(l)
	}
	if l, ok := listener.(HandPlayedListener); ok {
		e.HandPlayed.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		e.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(TrickWonListener); ok {
		e.TrickWon.AddListener(l)
	}
	if l, ok := listener.(RoundScoredListener); ok {
		e.RoundScored.AddListener(l)
	}
	if l, ok := listener.(PlayerResignedListener); ok {
		e.PlayerResigned.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		e.GameOver.AddListener(l)
	}
}
