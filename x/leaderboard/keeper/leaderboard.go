package keeper

import (
	"context"
	"sort"

	"crossychain/x/leaderboard/types"
)

// RankedEntries loads every stored record and returns the flattened view
// sorted descending by high score. The sort is stable and uses no
// secondary key: equal scores keep store enumeration order. Ranking is
// computed on read; no index is maintained on write.
func (k Keeper) RankedEntries(ctx context.Context) ([]types.LeaderboardEntry, error) {
	var entries []types.LeaderboardEntry
	err := k.WalkPlayers(ctx, func(player string, record types.PlayerRecord) (bool, error) {
		entries = append(entries, record.Entry(player))
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].HighScore > entries[j].HighScore
	})
	return entries, nil
}

// ClampTopN resolves a requested top-N against params: zero means the
// default, anything above the maximum is capped.
func ClampTopN(topN uint32, params types.Params) int {
	if topN == 0 {
		topN = params.DefaultLeaderboardSize
	}
	if topN > params.MaxLeaderboardSize {
		topN = params.MaxLeaderboardSize
	}
	if topN == 0 {
		topN = 1
	}
	return int(topN)
}
