package event

type RoundScoredPayload struct {
	Round        int
	LandlordName string
	LandlordWon  bool
	Bid          int
	Scores       []Score
}

type RoundScoredListener interface {
	OnRoundScored(RoundScoredPayload)
}

type roundScoredEmitter struct {
	listeners []RoundScoredListener
}

func (e *roundScoredEmitter) AddListener(listener RoundScoredListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundScoredEmitter) Emit(payload RoundScoredPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundScored(payload)
	}
}
