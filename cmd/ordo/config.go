package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/odvcencio/ordo/pkg/compare"
	"github.com/odvcencio/ordo/pkg/order"
	"github.com/odvcencio/ordo/pkg/setops"
)

const configFile = ".ordo.toml"

// config holds per-directory flag defaults read from .ordo.toml.
type config struct {
	Sort sortConfig `toml:"sort"`
	Set  setConfig  `toml:"set"`
}

type sortConfig struct {
	By         string `toml:"by"`
	Descending bool   `toml:"descending"`
	Unstable   bool   `toml:"unstable"`
}

type setConfig struct {
	Mode string `toml:"mode"`
}

// readConfig reads .ordo.toml from the current directory. A missing
// file returns the built-in defaults.
func readConfig() (*config, error) {
	cfg := &config{
		Sort: sortConfig{By: "smart"},
		Set:  setConfig{Mode: "normal"},
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if cfg.Sort.By == "" {
		cfg.Sort.By = "smart"
	}
	if cfg.Set.Mode == "" {
		cfg.Set.Mode = "normal"
	}
	return cfg, nil
}

// parseStrategy maps a --by flag value to a comparison strategy.
func parseStrategy(s string) (compare.Strategy, error) {
	switch s {
	case "smart":
		return compare.Smart, nil
	case "numeric":
		return compare.Numeric, nil
	case "string":
		return compare.String, nil
	case "stringci":
		return compare.StringCI, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want smart, numeric, string, or stringci)", s)
	}
}

// parseMode maps a --mode flag value to a set-algebra mode.
func parseMode(s string) (setops.Mode, error) {
	switch s {
	case "normal":
		return setops.Normal, nil
	case "key":
		return setops.Key, nil
	case "assoc":
		return setops.Assoc, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want normal, key, or assoc)", s)
	}
}

func direction(desc bool) order.Direction {
	if desc {
		return order.Desc
	}
	return order.Asc
}
