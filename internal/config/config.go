// Package config loads engine tuning parameters from an on-disk TOML file,
// the one piece of configuration an embeddable engine core plausibly owns:
// hash table size, the termination check interval, a time-slice fraction and
// a default move time. session.NewFromConfig applies only the first two.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Engine holds tunable parameters for a session.
type Engine struct {
	// HashSizeMB sizes the transposition table, in megabytes.
	HashSizeMB int `toml:"hash_size_mb"`

	// CheckTerminationNodes is how many nodes the search visits between
	// checks of its time limit and stop flag.
	CheckTerminationNodes int `toml:"check_termination_nodes"`

	// TimeSliceFraction is a fraction of the move-time budget. It is loaded
	// with the rest of the file, but no code in this module reads it: the
	// search does not limit iterative deepening by it.
	TimeSliceFraction float64 `toml:"time_slice_fraction"`

	// DefaultMoveTime is a move time for searches started without one. It is
	// loaded with the rest of the file, but no code in this module reads it.
	DefaultMoveTime Duration `toml:"default_move_time"`
}

// Default returns the engine configuration used when no config file is
// supplied.
func Default() Engine {
	return Engine{
		HashSizeMB:            64,
		CheckTerminationNodes: 2048,
		TimeSliceFraction:     0.6,
		DefaultMoveTime:       Duration(2 * time.Second),
	}
}

// Duration wraps time.Duration so it can be parsed from a TOML string like
// "2s" or "500ms" instead of a raw integer count of nanoseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for BurntSushi/toml.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and parses an engine configuration file, filling in defaults
// for any field the file omits.
func Load(path string) (Engine, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Engine{}, err
	}
	return cfg, nil
}
