package event

type PlayerResignedPayload struct {
	PlayerName string
}

type PlayerResignedListener interface {
	OnPlayerResigned(PlayerResignedPayload)
}

type playerResignedEmitter struct {
	listeners []PlayerResignedListener
}

func (e *playerResignedEmitter) AddListener(listener PlayerResignedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerResignedEmitter) Emit(payload PlayerResignedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerResigned(payload)
	}
}
