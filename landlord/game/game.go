package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/landlord/event"
)

type RoundOutcome int

const (
	RoundCompleted RoundOutcome = iota
	// RoundVoid means nobody bid. The cards are dealt again.
	RoundVoid
	// RoundResigned means a player gave up during the continuation vote.
	RoundResigned
)

type Result struct {
	// Scores are the final totals in player order.
	Scores   []int64
	Rounds   int
	Resigned bool
}

type Game struct {
	players    []*playerController
	byID       map[int64]*playerController
	order      TurnOrder
	deck       *Deck
	discard    *Pile
	holding    *Pile
	scoreboard *database.Scoreboard
	emitters   *event.Emitters
	listeners  []interface{}
	pacer      Pacer
	shuffle    ShuffleFunc
	maxRounds  int
	rounds     int
	deals      int
}

type Option func(g *Game)

// WithShuffle replaces rand.Shuffle for the deck and the turn order.
func WithShuffle(shuffle ShuffleFunc) Option {
	return func(g *Game) {
		g.shuffle = shuffle
	}
}

func WithPacer(pacer Pacer) Option {
	return func(g *Game) {
		g.pacer = pacer
	}
}

func WithEmitters(emitters *event.Emitters) Option {
	return func(g *Game) {
		g.emitters = emitters
	}
}

// WithListeners subscribes every listener to the events it implements.
func WithListeners(listeners ...interface{}) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, listeners...)
	}
}

// WithMaxRounds stops the match after n completed rounds, 0 plays until someone resigns.
func WithMaxRounds(n int) Option {
	return func(g *Game) {
		g.maxRounds = n
	}
}

func New(players []Player, opts ...Option) (*Game, error) {
	if len(players) != consts.Players {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	g := &Game{
		players:  make([]*playerController, 0, len(players)),
		byID:     make(map[int64]*playerController, len(players)),
		discard:  NewPile(),
		holding:  NewPile(),
		emitters: event.NewEmitters(),
		pacer:    noPacer{},
	}
	for _, opt := range opts {
		opt(g)
	}
	ids := make([]int64, 0, len(players))
	for _, player := range players {
		if player == nil {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		if _, ok := g.byID[player.ID()]; ok {
			return nil, fmt.Errorf("duplicate player id %d: %w", player.ID(), consts.ErrorsGamePlayersInvalid)
		}
		controller := newPlayerController(player)
		g.players = append(g.players, controller)
		g.byID[player.ID()] = controller
		ids = append(ids, player.ID())
	}
	for _, listener := range g.listeners {
		g.emitters.AddListener(listener)
	}
	g.deck = NewDeck(g.shuffle)
	g.order = NewTurnOrder(ids, g.deck.shuffle)
	g.scoreboard = database.NewScoreboard(ids)
	return g, nil
}

func (g *Game) TurnOrder() TurnOrder {
	return g.order
}

func (g *Game) Scoreboard() *database.Scoreboard {
	return g.scoreboard
}

// Scores returns the current totals in player order.
func (g *Game) Scores() []int64 {
	return g.scoreboard.Scores()
}

// Run plays rounds until a player resigns or the round limit is reached.
func (g *Game) Run() (Result, error) {
	names := make([]string, 0, len(g.players))
	for _, id := range g.order.IDs() {
		names = append(names, g.byID[id].Name())
	}
	log.Infof("match started, turn order %s\n", strings.Join(names, ", "))

	resigned := false
	for g.maxRounds == 0 || g.rounds < g.maxRounds {
		outcome, err := g.PlayRound()
		if err != nil {
			log.Error(err)
			return g.result(false), err
		}
		if outcome == RoundResigned {
			resigned = true
			break
		}
	}
	g.cleanUp()

	result := g.result(resigned)
	scores := make([]event.Score, 0, len(g.players))
	for i, player := range g.players {
		scores = append(scores, event.Score{PlayerName: player.Name(), Total: result.Scores[i]})
	}
	g.emitters.GameOver.Emit(event.GameOverPayload{Rounds: result.Rounds, Scores: scores})
	log.Infof("match over after %d round(s), scores %v\n", result.Rounds, result.Scores)
	g.pacer.Long()
	return result, nil
}

func (g *Game) result(resigned bool) Result {
	return Result{Scores: g.Scores(), Rounds: g.rounds, Resigned: resigned}
}

// cleanUp gathers every card back into the deck.
func (g *Game) cleanUp() {
	g.discard.Add(g.holding.RemoveAll()...)
	for _, player := range g.players {
		player.bid = consts.BidUnset
		player.team = consts.TeamNone
		g.discard.Add(player.RemoveAll()...)
	}
	g.deck.Add(g.discard.RemoveAll()...)
}
