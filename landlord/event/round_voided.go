package event

type RoundVoidedPayload struct {
	Round int
}

type RoundVoidedListener interface {
	OnRoundVoided(RoundVoidedPayload)
}

type roundVoidedEmitter struct {
	listeners []RoundVoidedListener
}

func (e *roundVoidedEmitter) AddListener(listener RoundVoidedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundVoidedEmitter) Emit(payload RoundVoidedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundVoided(payload)
	}
}
