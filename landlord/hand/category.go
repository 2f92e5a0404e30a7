package hand

type KickerType int

const (
	KickerNone KickerType = iota
	KickerSolo
	KickerPair
	KickerDualSolo
	KickerDualPair
)

// Category describes how a hand is composed: PrimalCount cards of one rank, an
// optional kicker, and the minimum length of a chain. A zero MinChainCount means
// the category never chains.
type Category struct {
	Name          string
	PrimalCount   int
	Kicker        KickerType
	MinChainCount int
}

func (c *Category) Chainable() bool {
	return c.MinChainCount > 0
}

func (c *Category) String() string {
	return c.Name
}

var (
	Solo         = &Category{Name: "Solo", PrimalCount: 1, Kicker: KickerNone, MinChainCount: 5}
	Pair         = &Category{Name: "Pair", PrimalCount: 2, Kicker: KickerNone, MinChainCount: 3}
	Trio         = &Category{Name: "Trio", PrimalCount: 3, Kicker: KickerNone, MinChainCount: 2}
	TrioKicker   = &Category{Name: "Trio + Kicker", PrimalCount: 3, Kicker: KickerSolo, MinChainCount: 2}
	FullHouse    = &Category{Name: "Full House", PrimalCount: 3, Kicker: KickerPair, MinChainCount: 2}
	Bomb         = &Category{Name: "Bomb", PrimalCount: 4, Kicker: KickerNone}
	BombDualSolo = &Category{Name: "Bomb + Two Kickers", PrimalCount: 4, Kicker: KickerDualSolo}
	BombDualPair = &Category{Name: "Bomb + Two Pairs", PrimalCount: 4, Kicker: KickerDualPair}

	// Rocket is never enumerated on its own; a Pair made of both jokers becomes one.
	Rocket = &Category{Name: "Rocket", PrimalCount: 2, Kicker: KickerNone}
)

// Categories is the enumerable set, in classification order.
var Categories = []*Category{
	Solo,
	Pair,
	Trio,
	TrioKicker,
	FullHouse,
	Bomb,
	BombDualSolo,
	BombDualPair,
}
