package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"crossychain/x/leaderboard/types"
)

// SaveScore handles the SaveScore message.
//
// Evidence is required strictly on record-breaking submissions: every
// leaderboard-visible high score must be independently verifiable, while
// non-record games cost no replay storage. HighScore and ReplayData only
// ever change together. The record is persisted with a single write; any
// validation failure leaves the store untouched.
func (k msgServer) SaveScore(ctx context.Context, msg *types.MsgSaveScore) (*types.MsgSaveScoreResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrUnauthenticated, "empty request")
	}
	if err := k.authenticate(msg.Creator); err != nil {
		return nil, err
	}
	if msg.Score == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidScore, "score must be greater than 0")
	}

	record, err := k.GetPlayer(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load player record")
	}

	isNewHigh := msg.Score > record.HighScore
	if isNewHigh {
		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed to load params")
		}
		if msg.ReplayData == nil {
			return nil, errorsmod.Wrap(types.ErrReplayRequired, "record-breaking score requires replay data")
		}
		if uint64(len(*msg.ReplayData)) > params.MaxReplayBytes {
			return nil, errorsmod.Wrapf(types.ErrReplayTooLarge, "replay is %d bytes, limit is %d", len(*msg.ReplayData), params.MaxReplayBytes)
		}
		record.HighScore = msg.Score
		record.ReplayData = msg.ReplayData
	}

	record.GamesPlayed++
	ts := msg.Timestamp
	record.LastPlayedAt = &ts

	if err := k.SetPlayer(ctx, msg.Creator, record); err != nil {
		return nil, errorsmod.Wrap(err, "failed to persist player record")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventScoreSaved,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrScore, strconv.FormatUint(uint64(msg.Score), 10)),
			sdk.NewAttribute(types.AttrGamesPlayed, strconv.FormatUint(uint64(record.GamesPlayed), 10)),
			sdk.NewAttribute(types.AttrTimestamp, strconv.FormatUint(msg.Timestamp, 10)),
		),
	)
	if isNewHigh {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventHighScore,
				sdk.NewAttribute(types.AttrPlayer, msg.Creator),
				sdk.NewAttribute(types.AttrHighScore, strconv.FormatUint(uint64(record.HighScore), 10)),
				sdk.NewAttribute(types.AttrReplayBytes, strconv.Itoa(len(*msg.ReplayData))),
			),
		)
	}

	return &types.MsgSaveScoreResponse{IsNewHighScore: isNewHigh, Record: record}, nil
}
