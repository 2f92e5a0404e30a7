package game

// Player is the selection provider behind one seat. Choose blocks until the
// player picks one of the actions the prompt offers.
type Player interface {
	ID() int64
	Name() string
	Choose(prompt Prompt) (Action, error)
}
