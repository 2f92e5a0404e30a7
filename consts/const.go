package consts

import (
	"time"
)

type PhaseID int

const (
	_ PhaseID = iota
	PhaseDealing
	PhaseAuctioning
	PhasePlaying
	PhaseScoring
	PhaseVoting
	PhaseFinished
)

const (
	Players = 3

	HandCards   = 17
	KittyCards  = 3
	DeckCards   = 54
	MaxBid      = 3
	MinBid      = 1
	BidUnset    = -1
	BidPass     = 0
	LandlordWin = 2

	BeatInterval  = 300 * time.Millisecond
	ShortInterval = 1 * time.Second
	LongInterval  = 2 * time.Second
)

const (
	TeamNone = iota
	TeamLandlord
	TeamPeasant
)

var Teams = map[int]string{
	TeamNone:     "none",
	TeamLandlord: "landlord",
	TeamPeasant:  "peasant",
}

var Phases = map[PhaseID]string{
	PhaseDealing:    "Dealing",
	PhaseAuctioning: "Auctioning",
	PhasePlaying:    "Playing",
	PhaseScoring:    "Scoring",
	PhaseVoting:     "Voting",
	PhaseFinished:   "Finished",
}

// MnemonicSorted lists rank keys from strongest to weakest.
var MnemonicSorted = []int{15, 14, 2, 1, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist              = NewErr(1, true, "Exist. ")
	ErrorsChanClosed         = NewErr(1, true, "Chan closed. ")
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsGamePlayersInvalid = NewErr(1, true, "Game players invalid. ")
	ErrorsPokersFacesInvalid = NewErr(1, false, "Pokers faces invalid. ")
	ErrorsHaveToPlay         = NewErr(1, false, "Have to play. ")
	ErrorsIllegalAction      = NewErr(2, true, "Action was not offered. ")
	ErrorsConfigInvalid      = NewErr(3, true, "Config invalid. ")
)
