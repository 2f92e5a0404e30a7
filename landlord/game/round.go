package game

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/auction"
	"github.com/ratel-online/landlord/landlord/card"
	"github.com/ratel-online/landlord/landlord/event"
	"github.com/ratel-online/landlord/landlord/hand"
)

type round struct {
	game     *Game
	number   int
	landlord *playerController
	toBeat   *hand.Hand
	toBeatBy *playerController
}

// PlayRound deals, runs the auction and, if somebody bid, plays the round to
// the end, settles the scores and holds the continuation vote.
func (g *Game) PlayRound() (RoundOutcome, error) {
	g.deals++
	r := &round{game: g, number: g.deals}
	g.emitters.RoundStarted.Emit(event.RoundStartedPayload{Round: r.number, PlayerNames: r.names()})
	log.Infof("round %d started\n", r.number)

	g.cleanUp()
	g.pacer.Beat()
	first := r.deal()

	outcome, err := auction.New(g.order.IDs(), first).Run(auction.BidderFunc(r.bid))
	if err != nil {
		return RoundVoid, fmt.Errorf("round %d auction: %w", r.number, err)
	}
	for _, player := range g.players {
		if !outcome.Awarded || player.ID() != outcome.Landlord {
			player.bid = consts.BidUnset
		}
	}
	if !outcome.Awarded {
		g.emitters.RoundVoided.Emit(event.RoundVoidedPayload{Round: r.number})
		log.Infof("round %d void, nobody bid\n", r.number)
		g.pacer.Short()
		return RoundVoid, nil
	}

	r.award(g.byID[outcome.Landlord], outcome.Bid)

	winner, err := r.playLoop()
	if err != nil {
		return RoundCompleted, fmt.Errorf("round %d play: %w", r.number, err)
	}
	r.settle(winner)
	g.rounds++

	resigned, err := r.vote()
	if err != nil {
		return RoundCompleted, fmt.Errorf("round %d vote: %w", r.number, err)
	}
	if resigned {
		g.cleanUp()
		return RoundResigned, nil
	}
	return RoundCompleted, nil
}

// deal shuffles, marks the top card, shuffles again and deals. The player who
// receives the marked card bids first, the first seat does when it stays in the kitty.
func (r *round) deal() int64 {
	g := r.game
	g.deck.Shuffle()
	faceUp := g.deck.Top()
	g.deck.Shuffle()

	ids := g.order.IDs()
	hands := g.deck.Deal(len(ids), consts.HandCards)
	first, inKitty := g.order.First(), true
	for i, id := range ids {
		g.byID[id].AddCards(hands[i])
		if hands[i].Contains(faceUp) {
			first, inKitty = id, false
		}
	}
	g.emitters.FirstBidderChosen.Emit(event.FirstBidderChosenPayload{
		PlayerName: g.byID[first].Name(),
		FaceUp:     faceUp,
		InKitty:    inKitty,
	})
	g.pacer.Short()
	return first
}

func (r *round) bid(id int64, options []int) (int, error) {
	g := r.game
	player := g.byID[id]
	action, err := player.choose(bidPrompt(r.state(player, consts.PhaseAuctioning), options))
	if err != nil {
		return consts.BidPass, err
	}
	amount := consts.BidPass
	if action.Kind == ActionBid {
		amount = action.Bid
	}
	player.bid = amount
	g.emitters.BidPlaced.Emit(event.BidPlacedPayload{PlayerName: player.Name(), Bid: amount})
	g.pacer.Beat()
	return amount, nil
}

// award hands the kitty to the landlord and splits the table into teams.
func (r *round) award(landlord *playerController, bid int) {
	g := r.game
	r.landlord = landlord
	landlord.bid = bid
	kitty := g.deck.Draw(consts.KittyCards)
	landlord.AddCards(kitty)
	for _, player := range g.players {
		player.team = consts.TeamPeasant
	}
	landlord.team = consts.TeamLandlord

	g.emitters.LandlordChosen.Emit(event.LandlordChosenPayload{PlayerName: landlord.Name(), Bid: bid, Kitty: kitty})
	log.Infof("round %d landlord %s with bid %d\n", r.number, landlord.Name(), bid)
	g.pacer.Short()
}

// playLoop runs tricks until somebody runs out of cards and returns that player.
func (r *round) playLoop() (*playerController, error) {
	g := r.game
	current := r.landlord
	var lastPlayer *playerController
	passes := 0
	for {
		played, auto, err := r.turn(current)
		if err != nil {
			return nil, err
		}
		if played == nil {
			passes++
			g.emitters.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: current.Name(), Auto: auto})
			g.pacer.Beat()
			if passes == len(g.players)-1 {
				g.emitters.TrickWon.Emit(event.TrickWonPayload{PlayerName: lastPlayer.Name()})
				g.discard.Add(g.holding.RemoveAll()...)
				r.toBeat, r.toBeatBy = nil, nil
				passes = 0
				current = lastPlayer
				g.pacer.Short()
				continue
			}
		} else {
			g.discard.Add(g.holding.RemoveAll()...)
			g.holding.Add(played.Cards()...)
			r.toBeat, r.toBeatBy = played, current
			lastPlayer = current
			passes = 0
			if played.IsBomb() {
				r.landlord.bid *= 2
			}
			g.emitters.HandPlayed.Emit(event.HandPlayedPayload{
				PlayerName: current.Name(),
				Hand:       *played,
				CardsLeft:  len(current.hand),
				Bid:        r.landlord.bid,
			})
			g.pacer.Beat()
			if current.NoCards() {
				return current, nil
			}
		}
		current = g.byID[g.order.Next(current.ID())]
	}
}

// turn returns the hand player plays, nil for a pass. auto is set when the
// player could not beat the table and was never asked.
func (r *round) turn(player *playerController) (played *hand.Hand, auto bool, err error) {
	g := r.game
	jokerDiscarded := g.discard.HasJoker() || g.holding.HasJoker()
	if !hand.CanPossiblyBeat(len(player.hand), jokerDiscarded, r.toBeat) {
		return nil, true, nil
	}
	candidates := hand.Beating(player.hand, r.toBeat)
	if len(candidates) == 0 {
		return nil, true, nil
	}
	played, err = player.Play(r.state(player, consts.PhasePlaying), candidates, r.toBeat != nil)
	return played, false, err
}

func (r *round) settle(winner *playerController) {
	g := r.game
	bid := int64(r.landlord.bid)
	landlordWon := winner.IsLandlord()
	scores := make([]event.Score, 0, len(g.players))
	for _, player := range g.players {
		delta := -bid
		if player.IsLandlord() {
			delta = consts.LandlordWin * bid
		}
		if !landlordWon {
			delta = -delta
		}
		total := g.scoreboard.Add(player.ID(), delta)
		scores = append(scores, event.Score{PlayerName: player.Name(), Delta: delta, Total: total})
	}
	g.emitters.RoundScored.Emit(event.RoundScoredPayload{
		Round:        r.number,
		LandlordName: r.landlord.Name(),
		LandlordWon:  landlordWon,
		Bid:          r.landlord.bid,
		Scores:       scores,
	})
	log.Infof("round %d won by %s, scores %v\n", r.number, winner.Name(), g.scoreboard.Scores())
	g.pacer.Long()
}

// vote asks every player in debt whether to keep going.
func (r *round) vote() (bool, error) {
	g := r.game
	if len(g.scoreboard.Negative()) == 0 {
		return false, nil
	}
	for _, id := range g.order.IDs() {
		if g.scoreboard.Get(id) >= 0 {
			continue
		}
		player := g.byID[id]
		action, err := player.choose(continuePrompt(r.state(player, consts.PhaseVoting)))
		if err != nil {
			return false, err
		}
		if action.Kind == ActionResign {
			g.emitters.PlayerResigned.Emit(event.PlayerResignedPayload{PlayerName: player.Name()})
			log.Infof("%s resigned after round %d\n", player.Name(), r.number)
			return true, nil
		}
	}
	return false, nil
}

func (r *round) names() []string {
	names := make([]string, 0, len(r.game.players))
	for _, id := range r.game.order.IDs() {
		names = append(names, r.game.byID[id].Name())
	}
	return names
}

func (r *round) state(player *playerController, phase consts.PhaseID) State {
	g := r.game
	state := State{
		Round:            r.number,
		Phase:            phase,
		PlayerName:       player.Name(),
		Team:             player.team,
		CurrentHand:      player.Hand(),
		ToBeat:           r.toBeat,
		PlayerSequence:   r.names(),
		PlayerHandCounts: make(map[string]int, len(g.players)),
		PlayerTeams:      make(map[string]int, len(g.players)),
		Scores:           make(map[string]int64, len(g.players)),
		Remaining:        make(map[card.Rank]int),
	}
	if r.landlord != nil {
		state.Landlord = r.landlord.Name()
		state.Bid = r.landlord.bid
	}
	if r.toBeatBy != nil {
		state.ToBeatBy = r.toBeatBy.Name()
	}
	for _, p := range g.players {
		state.PlayerHandCounts[p.Name()] = len(p.hand)
		state.PlayerTeams[p.Name()] = p.team
		state.Scores[p.Name()] = g.scoreboard.Get(p.ID())
	}

	seen := player.Hand()
	seen = append(seen, g.discard.Cards()...)
	seen = append(seen, g.holding.Cards()...)
	for _, c := range card.NewDeck() {
		if !seen.Contains(c) {
			state.Remaining[c.Rank]++
		}
	}
	return state
}
