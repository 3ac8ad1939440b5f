package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crossychain/x/leaderboard/keeper"
	"crossychain/x/leaderboard/types"
)

func seedPlayer(t *testing.T, f *fixture, ms types.MsgServer, seed string, score uint32) string {
	t.Helper()
	player := testAddress(t, f, seed)
	_, err := ms.SaveScore(f.ctx, &types.MsgSaveScore{
		Creator:    player,
		Score:      score,
		ReplayData: strPtr("replay-" + seed),
		Timestamp:  100,
	})
	require.NoError(t, err)
	return player
}

func TestQueryLeaderboard(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)

	first := seedPlayer(t, f, ms, "player_one_address", 100)
	tiedA := seedPlayer(t, f, ms, "player_two_address", 80)
	tiedB := seedPlayer(t, f, ms, "player_three_address", 80)

	resp, err := qs.Leaderboard(f.ctx, &types.QueryLeaderboardRequest{TopN: 2})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	require.Equal(t, first, resp.Entries[0].Player)
	require.Equal(t, uint32(100), resp.Entries[0].HighScore)
	require.Equal(t, uint32(80), resp.Entries[1].HighScore)

	// Tie order between equal scores is unspecified, but a full query
	// must surface both tied players.
	resp, err = qs.Leaderboard(f.ctx, &types.QueryLeaderboardRequest{TopN: 3})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)
	players := []string{resp.Entries[1].Player, resp.Entries[2].Player}
	require.Contains(t, players, tiedA)
	require.Contains(t, players, tiedB)

	// Zero top-N means the configured default.
	resp, err = qs.Leaderboard(f.ctx, &types.QueryLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)

	// Requests above the cap are clamped, not rejected.
	resp, err = qs.Leaderboard(f.ctx, &types.QueryLeaderboardRequest{TopN: 100000})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)
}

func TestQueryLeaderboard_EmptyStore(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)

	resp, err := qs.Leaderboard(f.ctx, &types.QueryLeaderboardRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Entries)
	require.NotNil(t, resp.Entries)
}

func TestQueryPlayer(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)

	player := seedPlayer(t, f, ms, "player_one_address", 42)

	resp, err := qs.Player(f.ctx, &types.QueryPlayerRequest{Player: player})
	require.NoError(t, err)
	require.Equal(t, player, resp.Entry.Player)
	require.Equal(t, uint32(42), resp.Entry.HighScore)
	require.Equal(t, uint32(1), resp.Entry.GamesPlayed)

	unknown := testAddress(t, f, "player_two_address")
	_, err = qs.Player(f.ctx, &types.QueryPlayerRequest{Player: unknown})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = qs.Player(f.ctx, &types.QueryPlayerRequest{})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryPlayerCount(t *testing.T) {
	f := initFixture(t)
	ms := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)

	resp, err := qs.PlayerCount(f.ctx, &types.QueryPlayerCountRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(0), resp.Count)

	seedPlayer(t, f, ms, "player_one_address", 10)
	seedPlayer(t, f, ms, "player_two_address", 20)

	// Repeat submissions do not grow the key set.
	player := testAddress(t, f, "player_one_address")
	_, err = ms.SaveScore(f.ctx, &types.MsgSaveScore{Creator: player, Score: 5, Timestamp: 200})
	require.NoError(t, err)

	resp, err = qs.PlayerCount(f.ctx, &types.QueryPlayerCountRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), resp.Count)
}

func TestQueryParams(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)

	resp, err := qs.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), resp.Params)
}
