package game

import (
	"sync"

	"github.com/ratel-online/landlord/landlord/card"
)

// Pile is a face-up stack of cards: the discard pile or the holding area of
// the hand currently to beat.
type Pile struct {
	sync.Mutex
	cards card.Cards
}

func NewPile() *Pile {
	return &Pile{cards: make(card.Cards, 0, 54)}
}

func (p *Pile) Add(cards ...card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, cards...)
}

func (p *Pile) Cards() card.Cards {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make(card.Cards, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// RemoveAll empties the pile and returns what it held.
func (p *Pile) RemoveAll() card.Cards {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := p.cards
	p.cards = make(card.Cards, 0, 54)
	return cards
}

func (p *Pile) HasJoker() bool {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return p.cards.HasJoker()
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}
