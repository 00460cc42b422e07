package ops

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Shivesh777/nanotick/internal/replay"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/source"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Tuning TuningConfig `json:"tuning"`
	Scale  ScaleConfig  `json:"scale"`
}

// TuningConfig sizes replay state up front. Zero values keep the
// defaults.
type TuningConfig struct {
	Books         int `json:"books"`
	OrdersPerBook int `json:"ordersPerBook"`
	LevelsPerSide int `json:"levelsPerSide"`
}

// ScaleConfig sets the decimal scales used when decoding feeds that
// carry prices and quantities as decimal strings.
type ScaleConfig struct {
	Price int `json:"price"`
	Qty   int `json:"qty"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Replay replay.Config
	Source source.Options
}

// Default returns the configuration used when no file is given.
func Default() Loaded {
	return Loaded{
		Replay: replay.Config{
			Books:         256,
			OrdersPerBook: 1024,
			LevelsPerSide: 256,
		},
		Source: source.Options{
			PriceScale: schema.DefaultPriceScale,
			QtyScale:   schema.DefaultQtyScale,
		},
	}
}

// Load reads a JSON config file and resolves it against the defaults.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if err := validateTuning(cfg.Tuning); err != nil {
		return Loaded{}, err
	}
	if err := validateScale(cfg.Scale); err != nil {
		return Loaded{}, err
	}
	loaded := Default()
	if cfg.Tuning.Books > 0 {
		loaded.Replay.Books = cfg.Tuning.Books
	}
	if cfg.Tuning.OrdersPerBook > 0 {
		loaded.Replay.OrdersPerBook = cfg.Tuning.OrdersPerBook
	}
	if cfg.Tuning.LevelsPerSide > 0 {
		loaded.Replay.LevelsPerSide = cfg.Tuning.LevelsPerSide
	}
	if cfg.Scale.Price > 0 {
		loaded.Source.PriceScale = cfg.Scale.Price
	}
	if cfg.Scale.Qty > 0 {
		loaded.Source.QtyScale = cfg.Scale.Qty
	}
	return loaded, nil
}

func validateTuning(cfg TuningConfig) error {
	if cfg.Books < 0 || cfg.OrdersPerBook < 0 || cfg.LevelsPerSide < 0 {
		return fmt.Errorf("tuning values must be >= 0")
	}
	return nil
}

func validateScale(cfg ScaleConfig) error {
	if cfg.Price < 0 || cfg.Qty < 0 {
		return fmt.Errorf("scale must be >= 0")
	}
	if cfg.Price > 9 || cfg.Qty > 9 {
		return fmt.Errorf("scale must be <= 9")
	}
	return nil
}
