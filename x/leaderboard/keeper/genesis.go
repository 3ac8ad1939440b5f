package keeper

import (
	"context"

	"crossychain/x/leaderboard/types"
)

// InitGenesis stores params and every player row.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, p := range genState.Players {
		if err := k.SetPlayer(ctx, p.Address, p.Record); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis walks the player table in store key order.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	genesis := &types.GenesisState{Params: params, Players: []types.GenesisPlayer{}}
	err = k.WalkPlayers(ctx, func(player string, record types.PlayerRecord) (bool, error) {
		genesis.Players = append(genesis.Players, types.GenesisPlayer{Address: player, Record: record})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
