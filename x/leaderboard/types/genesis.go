package types

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// GenesisPlayer pairs a wallet address with its stored record.
type GenesisPlayer struct {
	Address string       `json:"address"`
	Record  PlayerRecord `json:"record"`
}

// GenesisState holds module params and the full player table.
type GenesisState struct {
	Params  Params          `json:"params"`
	Players []GenesisPlayer `json:"players"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:  DefaultParams(),
		Players: []GenesisPlayer{},
	}
}

// Validate checks params and every player row against the ledger
// invariants: unique non-empty addresses, replay evidence present
// whenever a high score is, bounded replay size, and in-range display
// names.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Players))
	for _, p := range gs.Players {
		if strings.TrimSpace(p.Address) == "" {
			return fmt.Errorf("player address cannot be empty")
		}
		if _, ok := seen[p.Address]; ok {
			return fmt.Errorf("duplicate player address %s", p.Address)
		}
		seen[p.Address] = struct{}{}

		if p.Record.HighScore > 0 && !p.Record.HasReplay() {
			return fmt.Errorf("player %s has a high score without replay data", p.Address)
		}
		if p.Record.ReplayData != nil && uint64(len(*p.Record.ReplayData)) > gs.Params.MaxReplayBytes {
			return fmt.Errorf("player %s replay data exceeds %d bytes", p.Address, gs.Params.MaxReplayBytes)
		}
		if p.Record.DisplayName != nil {
			name := *p.Record.DisplayName
			if name != strings.TrimSpace(name) {
				return fmt.Errorf("player %s display name has surrounding whitespace", p.Address)
			}
			if name == "" || uint32(utf8.RuneCountInString(name)) > gs.Params.MaxDisplayNameChars {
				return fmt.Errorf("player %s display name must be 1-%d characters", p.Address, gs.Params.MaxDisplayNameChars)
			}
		}
	}
	return nil
}
