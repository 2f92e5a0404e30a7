package event

// Score is one player's standing after a round, Delta being what the round changed.
type Score struct {
	PlayerName string
	Delta      int64
	Total      int64
}
