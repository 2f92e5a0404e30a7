package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/landlord/consts"
	"gopkg.in/yaml.v3"
)

const (
	KindHuman = "human"
	KindGood  = "good"
	KindNaive = "naive"
)

type Config struct {
	Players   []PlayerConfig `yaml:"players"`
	MaxRounds int            `yaml:"max_rounds"`
	Pacing    PacingConfig   `yaml:"pacing"`
	Color     bool           `yaml:"color"`
}

type PlayerConfig struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type PacingConfig struct {
	Beat  time.Duration `yaml:"beat"`
	Short time.Duration `yaml:"short"`
	Long  time.Duration `yaml:"long"`
}

// Default is one human against a good and a naive bot.
func Default() *Config {
	return &Config{
		Players: []PlayerConfig{
			{ID: 1, Name: "You", Kind: KindHuman},
			{ID: 2, Kind: KindGood},
			{ID: 3, Kind: KindNaive},
		},
		Pacing: PacingConfig{
			Beat:  consts.BeatInterval,
			Short: consts.ShortInterval,
			Long:  consts.LongInterval,
		},
		Color: true,
	}
}

// Load reads the yaml file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Players) != consts.Players {
		return fmt.Errorf("%d players configured, want %d: %w", len(c.Players), consts.Players, consts.ErrorsConfigInvalid)
	}
	ids := map[int64]bool{}
	for _, player := range c.Players {
		if ids[player.ID] {
			return fmt.Errorf("duplicate player id %d: %w", player.ID, consts.ErrorsConfigInvalid)
		}
		ids[player.ID] = true
		switch player.Kind {
		case KindHuman, KindGood, KindNaive:
		default:
			return fmt.Errorf("unknown player kind %q: %w", player.Kind, consts.ErrorsConfigInvalid)
		}
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("negative max_rounds: %w", consts.ErrorsConfigInvalid)
	}
	if c.Pacing.Beat < 0 || c.Pacing.Short < 0 || c.Pacing.Long < 0 {
		return fmt.Errorf("negative pacing: %w", consts.ErrorsConfigInvalid)
	}
	return nil
}
