package types

import (
	"fmt"
)

// Params defines leaderboard configuration.
type Params struct {
	// MaxReplayBytes caps the serialized replay payload accepted with a
	// record-breaking score, measured in bytes.
	MaxReplayBytes uint64 `json:"max_replay_bytes" yaml:"max_replay_bytes"`
	// MaxDisplayNameChars caps a display name's length in characters after
	// whitespace trimming.
	MaxDisplayNameChars uint32 `json:"max_display_name_chars" yaml:"max_display_name_chars"`
	// DefaultLeaderboardSize is the number of entries returned when a query
	// does not ask for a specific top-N.
	DefaultLeaderboardSize uint32 `json:"default_leaderboard_size" yaml:"default_leaderboard_size"`
	// MaxLeaderboardSize is the hard cap on top-N.
	MaxLeaderboardSize uint32 `json:"max_leaderboard_size" yaml:"max_leaderboard_size"`
}

// DefaultParams returns the default leaderboard parameters.
func DefaultParams() Params {
	return Params{
		MaxReplayBytes:         1_000_000,
		MaxDisplayNameChars:    30,
		DefaultLeaderboardSize: 10,
		MaxLeaderboardSize:     100,
	}
}

// Validate checks param bounds.
func (p Params) Validate() error {
	if p.MaxReplayBytes == 0 {
		return fmt.Errorf("max_replay_bytes must be positive")
	}
	if p.MaxDisplayNameChars == 0 {
		return fmt.Errorf("max_display_name_chars must be positive")
	}
	if p.DefaultLeaderboardSize == 0 {
		return fmt.Errorf("default_leaderboard_size must be positive")
	}
	if p.MaxLeaderboardSize == 0 {
		return fmt.Errorf("max_leaderboard_size must be positive")
	}
	if p.DefaultLeaderboardSize > p.MaxLeaderboardSize {
		return fmt.Errorf("default_leaderboard_size cannot exceed max_leaderboard_size")
	}
	return nil
}
