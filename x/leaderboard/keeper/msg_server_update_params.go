package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"

	"crossychain/x/leaderboard/types"
)

func (k msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "empty request")
	}

	signer, err := k.addressCodec.StringToBytes(msg.Authority)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "invalid authority address")
	}

	if !bytes.Equal(signer, k.GetAuthority()) {
		return nil, errorsmod.Wrap(types.ErrInvalidSigner, "unauthorized")
	}

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
