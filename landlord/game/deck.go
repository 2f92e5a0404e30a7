package game

import (
	"math/rand"
	"sync"

	"github.com/ratel-online/landlord/landlord/card"
)

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Deck is the draw pile. It starts with the full 54 cards and gets every card
// back between rounds.
type Deck struct {
	sync.Mutex
	cards   card.Cards
	shuffle ShuffleFunc
}

func NewDeck(shuffle ShuffleFunc) *Deck {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Deck{cards: card.NewDeck(), shuffle: shuffle}
}

func (d *Deck) Shuffle() {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Top() card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return d.cards[0]
}

func (d *Deck) Draw(amount int) card.Cards {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make(card.Cards, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

// Deal hands out perHand cards to each of hands seats, one card at a time.
func (d *Deck) Deal(hands, perHand int) []card.Cards {
	dealt := make([]card.Cards, hands)
	for i := range dealt {
		dealt[i] = make(card.Cards, 0, perHand)
	}
	for _, c := range d.Draw(hands * perHand) {
		seat := 0
		for i := range dealt {
			if len(dealt[i]) < len(dealt[seat]) {
				seat = i
			}
		}
		dealt[seat] = append(dealt[seat], c)
	}
	return dealt
}

func (d *Deck) Add(cards ...card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}
