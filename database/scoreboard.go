package database

import (
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
)

// Scoreboard keeps the cumulative score of every seat of a match. The round
// controller is the only writer, result reporters may read it at any time.
type Scoreboard struct {
	ids    []int64
	scores *hashmap.HashMap
}

type seat struct {
	id    int64
	score int64
}

func NewScoreboard(ids []int64) *Scoreboard {
	board := &Scoreboard{
		ids:    append([]int64{}, ids...),
		scores: hashmap.New(),
	}
	board.Reset()
	return board
}

// Add applies delta to the score of id and returns the new total. Unknown ids are ignored.
func (s *Scoreboard) Add(id int64, delta int64) int64 {
	v, ok := s.scores.Get(id)
	if !ok {
		return 0
	}
	return atomic.AddInt64(&v.(*seat).score, delta)
}

func (s *Scoreboard) Get(id int64) int64 {
	v, ok := s.scores.Get(id)
	if !ok {
		return 0
	}
	return atomic.LoadInt64(&v.(*seat).score)
}

// Scores lists the totals in seat order.
func (s *Scoreboard) Scores() []int64 {
	scores := make([]int64, 0, len(s.ids))
	for _, id := range s.ids {
		scores = append(scores, s.Get(id))
	}
	return scores
}

// Negative lists the ids whose score is below zero, in no particular order.
func (s *Scoreboard) Negative() []int64 {
	ids := make([]int64, 0)
	s.scores.Foreach(func(e *hashmap.Entry) {
		if seat := e.Value().(*seat); atomic.LoadInt64(&seat.score) < 0 {
			ids = append(ids, seat.id)
		}
	})
	return ids
}

func (s *Scoreboard) Reset() {
	for _, id := range s.ids {
		s.scores.Set(id, &seat{id: id})
	}
}
