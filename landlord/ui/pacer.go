package ui

import (
	"time"
)

// SleepPacer waits between phases so that a console player can follow the table.
type SleepPacer struct {
	BeatInterval  time.Duration
	ShortInterval time.Duration
	LongInterval  time.Duration
}

func (p SleepPacer) Beat() {
	time.Sleep(p.BeatInterval)
}

func (p SleepPacer) Short() {
	time.Sleep(p.ShortInterval)
}

func (p SleepPacer) Long() {
	time.Sleep(p.LongInterval)
}
