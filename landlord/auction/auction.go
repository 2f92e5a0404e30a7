package auction

import (
	"fmt"

	"github.com/ratel-online/core/util/arrays"
	"github.com/ratel-online/landlord/consts"
)

// Bidder asks one player for a bid. options holds the legal amounts in ascending
// order followed by consts.BidPass.
type Bidder interface {
	Bid(player int64, options []int) (int, error)
}

type BidderFunc func(player int64, options []int) (int, error)

func (f BidderFunc) Bid(player int64, options []int) (int, error) {
	return f(player, options)
}

// Outcome is the terminal state of an auction. The zero value is NoLandlord.
type Outcome struct {
	Awarded  bool
	Landlord int64
	Bid      int
	// Bids holds the last bid of every player who acted, consts.BidPass for a pass.
	Bids map[int64]int
}

var NoLandlord = Outcome{}

type Auction struct {
	order         []int64
	bidder        int64
	highestBid    int
	highestBidder int64
	passed        map[int64]bool
	bids          map[int64]int
}

// New prepares an auction over the circular turn order, first to speak is first.
func New(order []int64, first int64) *Auction {
	return &Auction{
		order:  order,
		bidder: first,
		passed: map[int64]bool{},
		bids:   map[int64]int{},
	}
}

func (a *Auction) Run(bidder Bidder) (Outcome, error) {
	if len(a.order) == 0 || arrays.IndexOf(a.order, a.bidder) < 0 {
		return NoLandlord, consts.ErrorsGamePlayersInvalid
	}
	for {
		options := a.options()
		bid, err := bidder.Bid(a.bidder, options)
		if err != nil {
			return NoLandlord, fmt.Errorf("bid of player %d: %w", a.bidder, err)
		}
		if !offered(options, bid) {
			return NoLandlord, fmt.Errorf("player %d bid %d: %w", a.bidder, bid, consts.ErrorsIllegalAction)
		}
		a.bids[a.bidder] = bid

		if bid == consts.BidPass {
			a.passed[a.bidder] = true
			if len(a.passed) == len(a.order) {
				return NoLandlord, nil
			}
			if len(a.passed) == len(a.order)-1 && a.highestBid > 0 {
				return a.award(a.remaining(), a.highestBid), nil
			}
			a.bidder = a.next()
			continue
		}

		if bid >= consts.MaxBid {
			return a.award(a.bidder, bid), nil
		}
		a.highestBid = bid
		a.highestBidder = a.bidder
		// everybody else already dropped out
		if len(a.passed) == len(a.order)-1 {
			return a.award(a.bidder, bid), nil
		}
		a.bidder = a.next()
	}
}

func (a *Auction) options() []int {
	options := make([]int, 0, consts.MaxBid+1)
	for bid := consts.MinBid; bid <= consts.MaxBid; bid++ {
		if bid > a.highestBid {
			options = append(options, bid)
		}
	}
	return append(options, consts.BidPass)
}

func (a *Auction) next() int64 {
	next := a.bidder
	for {
		idx := arrays.IndexOf(a.order, next)
		next = a.order[(idx+1)%len(a.order)]
		if !a.passed[next] {
			return next
		}
	}
}

func (a *Auction) remaining() int64 {
	for _, player := range a.order {
		if !a.passed[player] {
			return player
		}
	}
	return a.highestBidder
}

func (a *Auction) award(landlord int64, bid int) Outcome {
	return Outcome{Awarded: true, Landlord: landlord, Bid: bid, Bids: a.bids}
}

func offered(options []int, bid int) bool {
	for _, option := range options {
		if option == bid {
			return true
		}
	}
	return false
}
