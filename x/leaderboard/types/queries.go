package types

import "context"

// QueryLeaderboardRequest asks for the ranked top-N view. A zero TopN
// means the configured default; values above the configured maximum are
// clamped.
type QueryLeaderboardRequest struct {
	TopN uint32 `json:"top_n,omitempty"`
}

type QueryLeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type QueryPlayerRequest struct {
	Player string `json:"player"`
}

type QueryPlayerResponse struct {
	Entry LeaderboardEntry `json:"entry"`
}

type QueryPlayerCountRequest struct{}

type QueryPlayerCountResponse struct {
	Count uint64 `json:"count"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryServer is the read-only surface of the module. Handlers never
// mutate state and may observe a mix of pre- and post-update records
// across different wallets.
type QueryServer interface {
	Leaderboard(ctx context.Context, req *QueryLeaderboardRequest) (*QueryLeaderboardResponse, error)
	Player(ctx context.Context, req *QueryPlayerRequest) (*QueryPlayerResponse, error)
	PlayerCount(ctx context.Context, req *QueryPlayerCountRequest) (*QueryPlayerCountResponse, error)
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
}
