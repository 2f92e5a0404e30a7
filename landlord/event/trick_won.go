package event

type TrickWonPayload struct {
	PlayerName string
}

type TrickWonListener interface {
	OnTrickWon(TrickWonPayload)
}

type trickWonEmitter struct {
	listeners []TrickWonListener
}

func (e *trickWonEmitter) AddListener(listener TrickWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *trickWonEmitter) Emit(payload TrickWonPayload) {
	for _, listener := range e.listeners {
		listener.OnTrickWon(payload)
	}
}
