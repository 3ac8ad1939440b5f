package keeper_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"crossychain/x/leaderboard/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f := initFixture(t)

	ts := uint64(1700000000)
	genesis := types.GenesisState{
		Params: types.DefaultParams(),
		Players: []types.GenesisPlayer{
			{
				Address: testAddress(t, f, "player_one_address"),
				Record: types.PlayerRecord{
					HighScore:    120,
					GamesPlayed:  7,
					LastPlayedAt: &ts,
					ReplayData:   strPtr("replay-A"),
					DisplayName:  strPtr("Ace"),
				},
			},
			{
				Address: testAddress(t, f, "player_two_address"),
				Record:  types.PlayerRecord{},
			},
		},
	}
	require.NoError(t, genesis.Validate())
	require.NoError(t, f.keeper.InitGenesis(f.ctx, genesis))

	exported, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.Equal(t, genesis.Params, exported.Params)
	require.ElementsMatch(t, genesis.Players, exported.Players)
}

func TestGenesisValidate(t *testing.T) {
	addr := "wallet-1"

	testCases := []struct {
		name      string
		mutate    func(gs *types.GenesisState)
		expErrMsg string
	}{
		{
			name:      "valid default",
			mutate:    func(gs *types.GenesisState) {},
			expErrMsg: "",
		},
		{
			name: "empty address",
			mutate: func(gs *types.GenesisState) {
				gs.Players = []types.GenesisPlayer{{Address: " "}}
			},
			expErrMsg: "address cannot be empty",
		},
		{
			name: "duplicate address",
			mutate: func(gs *types.GenesisState) {
				gs.Players = []types.GenesisPlayer{{Address: addr}, {Address: addr}}
			},
			expErrMsg: "duplicate player address",
		},
		{
			name: "high score without replay",
			mutate: func(gs *types.GenesisState) {
				gs.Players = []types.GenesisPlayer{{
					Address: addr,
					Record:  types.PlayerRecord{HighScore: 10, GamesPlayed: 1},
				}}
			},
			expErrMsg: "high score without replay data",
		},
		{
			name: "oversized replay",
			mutate: func(gs *types.GenesisState) {
				big := strings.Repeat("x", 1_000_001)
				gs.Players = []types.GenesisPlayer{{
					Address: addr,
					Record:  types.PlayerRecord{HighScore: 10, GamesPlayed: 1, ReplayData: &big},
				}}
			},
			expErrMsg: "replay data exceeds",
		},
		{
			name: "display name too long",
			mutate: func(gs *types.GenesisState) {
				long := strings.Repeat("a", 31)
				gs.Players = []types.GenesisPlayer{{
					Address: addr,
					Record:  types.PlayerRecord{DisplayName: &long},
				}}
			},
			expErrMsg: "display name must be",
		},
		{
			name: "display name with surrounding whitespace",
			mutate: func(gs *types.GenesisState) {
				padded := " Ace "
				gs.Players = []types.GenesisPlayer{{
					Address: addr,
					Record:  types.PlayerRecord{DisplayName: &padded},
				}}
			},
			expErrMsg: "surrounding whitespace",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			tc.mutate(gs)

			err := gs.Validate()
			if tc.expErrMsg == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expErrMsg)
			}
		})
	}
}
