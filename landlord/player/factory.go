package player

import (
	"fmt"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/landlord/config"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/landlord/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers builds the seats described by configs. Bots without a name get
// one from botNames.
func CreatePlayers(configs []config.PlayerConfig) ([]game.Player, error) {
	names := unusedBotNames(configs)
	players := make([]game.Player, 0, len(configs))
	for _, cfg := range configs {
		name := cfg.Name
		if name == "" {
			name, names = names[0], names[1:]
		}
		switch cfg.Kind {
		case config.KindHuman:
			players = append(players, NewHumanPlayer(cfg.ID, name))
		case config.KindGood:
			players = append(players, NewGoodPlayer(cfg.ID, name))
		case config.KindNaive:
			players = append(players, NewNaivePlayer(cfg.ID, name))
		default:
			return nil, fmt.Errorf("unknown player kind %q: %w", cfg.Kind, consts.ErrorsConfigInvalid)
		}
	}
	return players, nil
}

func unusedBotNames(configs []config.PlayerConfig) []string {
	taken := map[string]bool{}
	for _, cfg := range configs {
		taken[cfg.Name] = true
	}
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if !taken[name] {
			names = append(names, name)
		}
	}
	for i := len(names) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	return names
}
