package agent

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is the typed option set for an agent, parsed once at startup from
// a whitespace-separated key=value string such as
//
//	"name=ntuple alpha=0.003125 save=weights.bin"
//
// Unknown or malformed keys are rejected at parse time.
type Config struct {
	Name    string
	Role    string
	Seed    uint64
	HasSeed bool
	Alpha   float64
	Init    []int // table size per feature group, nil when unconfigured
	Load    string
	Save    string
}

// ParseConfig parses an option string into a Config.
func ParseConfig(args string) (Config, error) {
	cfg := Config{}
	for _, pair := range strings.Fields(args) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return Config{}, fmt.Errorf("malformed option %q, want key=value", pair)
		}

		switch key {
		case "name":
			cfg.Name = value
		case "role":
			cfg.Role = value
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return Config{}, fmt.Errorf("option seed: %w", err)
			}
			cfg.Seed = seed
			cfg.HasSeed = true
		case "alpha":
			alpha, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Config{}, fmt.Errorf("option alpha: %w", err)
			}
			cfg.Alpha = alpha
		case "init":
			sizes, err := parseSizes(value)
			if err != nil {
				return Config{}, fmt.Errorf("option init: %w", err)
			}
			cfg.Init = sizes
		case "load":
			cfg.Load = value
		case "save":
			cfg.Save = value
		default:
			return Config{}, fmt.Errorf("unknown option %q", key)
		}
	}
	return cfg, nil
}

func parseSizes(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("table size %q: %w", part, err)
		}
		if size <= 0 {
			return nil, fmt.Errorf("table size %d must be positive", size)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
