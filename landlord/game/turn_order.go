package game

import (
	"github.com/ratel-online/core/util/arrays"
)

// TurnOrder is the circular seating of a match, fixed once the match starts.
type TurnOrder struct {
	ids []int64
}

func NewTurnOrder(ids []int64, shuffle ShuffleFunc) TurnOrder {
	order := append([]int64{}, ids...)
	if shuffle != nil {
		shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return TurnOrder{ids: order}
}

func (o TurnOrder) IDs() []int64 {
	return append([]int64{}, o.ids...)
}

func (o TurnOrder) First() int64 {
	return o.ids[0]
}

func (o TurnOrder) Next(curr int64) int64 {
	idx := arrays.IndexOf(o.ids, curr)
	return o.ids[(idx+1)%len(o.ids)]
}

func (o TurnOrder) Prev(curr int64) int64 {
	idx := arrays.IndexOf(o.ids, curr)
	return o.ids[(idx-1+len(o.ids))%len(o.ids)]
}
