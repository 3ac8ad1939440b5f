package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crossychain/x/leaderboard/types"
)

// Leaderboard returns the top-N ranked view. TopN is clamped against
// params; zero means the configured default.
func (q queryServer) Leaderboard(ctx context.Context, req *types.QueryLeaderboardRequest) (*types.QueryLeaderboardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	entries, err := q.k.RankedEntries(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	limit := ClampTopN(req.TopN, params)
	if limit < len(entries) {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []types.LeaderboardEntry{}
	}
	return &types.QueryLeaderboardResponse{Entries: entries}, nil
}

// Player returns one wallet's entry without ranking it.
func (q queryServer) Player(ctx context.Context, req *types.QueryPlayerRequest) (*types.QueryPlayerResponse, error) {
	if req == nil || req.Player == "" {
		return nil, status.Error(codes.InvalidArgument, "player required")
	}
	record, err := q.k.Players.Get(ctx, req.Player)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, status.Error(codes.NotFound, types.ErrPlayerNotFound.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPlayerResponse{Entry: record.Entry(req.Player)}, nil
}

// PlayerCount returns the cardinality of the player key set.
func (q queryServer) PlayerCount(ctx context.Context, req *types.QueryPlayerCountRequest) (*types.QueryPlayerCountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	count, err := q.k.PlayerCount(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryPlayerCountResponse{Count: count}, nil
}

// Params returns current module params.
func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}
