package main

import (
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/config"
	"github.com/ratel-online/landlord/landlord/game"
	"github.com/ratel-online/landlord/landlord/player"
	"github.com/ratel-online/landlord/landlord/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	path := flag.String("config", "", "yaml file with players, rounds and pacing")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			log.Error(err)
			return
		}
		cfg = loaded
	}
	ui.SetColor(cfg.Color)
	ui.Message.Welcome()

	players, err := player.CreatePlayers(cfg.Players)
	if err != nil {
		log.Error(err)
		return
	}
	g, err := game.New(players,
		game.WithPacer(ui.SleepPacer{
			BeatInterval:  cfg.Pacing.Beat,
			ShortInterval: cfg.Pacing.Short,
			LongInterval:  cfg.Pacing.Long,
		}),
		game.WithListeners(ui.ConsoleListener{}),
		game.WithMaxRounds(cfg.MaxRounds),
	)
	if err != nil {
		log.Error(err)
		return
	}
	result, err := g.Run()
	if err != nil {
		log.Error(err)
		return
	}
	log.Infof("final scores %v after %d round(s)\n", result.Scores, result.Rounds)
}
