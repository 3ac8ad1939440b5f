package types

import (
	"fmt"

	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var (
	KeyMaxReplayBytes         = []byte("MaxReplayBytes")
	KeyMaxDisplayNameChars    = []byte("MaxDisplayNameChars")
	KeyDefaultLeaderboardSize = []byte("DefaultLeaderboardSize")
	KeyMaxLeaderboardSize     = []byte("MaxLeaderboardSize")
)

// ParamKeyTable returns the key declaration for params.
func ParamKeyTable() paramstypes.KeyTable {
	return paramstypes.NewKeyTable().RegisterParamSet(&Params{})
}

// ParamSetPairs implements params.ParamSet.
func (p *Params) ParamSetPairs() paramstypes.ParamSetPairs {
	return paramstypes.ParamSetPairs{
		paramstypes.NewParamSetPair(KeyMaxReplayBytes, &p.MaxReplayBytes, validateNonZeroUint64("max_replay_bytes")),
		paramstypes.NewParamSetPair(KeyMaxDisplayNameChars, &p.MaxDisplayNameChars, validateNonZeroUint32("max_display_name_chars")),
		paramstypes.NewParamSetPair(KeyDefaultLeaderboardSize, &p.DefaultLeaderboardSize, validateNonZeroUint32("default_leaderboard_size")),
		paramstypes.NewParamSetPair(KeyMaxLeaderboardSize, &p.MaxLeaderboardSize, validateNonZeroUint32("max_leaderboard_size")),
	}
}

// ValidateBasic performs basic validation.
func (p Params) ValidateBasic() error { return p.Validate() }

func validateNonZeroUint64(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint64)
		if !ok {
			return fmt.Errorf("invalid parameter type for %s", name)
		}
		if v == 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}

func validateNonZeroUint32(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint32)
		if !ok {
			return fmt.Errorf("invalid parameter type for %s", name)
		}
		if v == 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}
