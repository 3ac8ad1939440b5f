package keeper

import (
	"context"
	"strings"
	"unicode/utf8"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"crossychain/x/leaderboard/types"
)

// RegisterPlayer handles the RegisterPlayer message.
//
// The request is tri-state: Clear wipes the stored name, a provided
// DisplayName is trimmed and applied when 1..MaxDisplayNameChars
// characters long, and an absent one leaves the name as is. An
// out-of-range name is accepted but ignored, keeping the existing value.
// The record is persisted even when nothing changed, so registration
// alone creates the default row.
func (k msgServer) RegisterPlayer(ctx context.Context, msg *types.MsgRegisterPlayer) (*types.MsgRegisterPlayerResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrUnauthenticated, "empty request")
	}
	if err := k.authenticate(msg.Creator); err != nil {
		return nil, err
	}

	record, err := k.GetPlayer(ctx, msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to load player record")
	}

	switch {
	case msg.Clear:
		record.DisplayName = nil
	case msg.DisplayName != nil:
		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed to load params")
		}
		trimmed := strings.TrimSpace(*msg.DisplayName)
		if trimmed != "" && uint32(utf8.RuneCountInString(trimmed)) <= params.MaxDisplayNameChars {
			record.DisplayName = &trimmed
		}
	}

	if err := k.SetPlayer(ctx, msg.Creator, record); err != nil {
		return nil, errorsmod.Wrap(err, "failed to persist player record")
	}

	name := ""
	if record.DisplayName != nil {
		name = *record.DisplayName
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventPlayerRegistered,
			sdk.NewAttribute(types.AttrPlayer, msg.Creator),
			sdk.NewAttribute(types.AttrDisplayName, name),
		),
	)

	return &types.MsgRegisterPlayerResponse{Record: record}, nil
}
