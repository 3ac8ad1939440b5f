package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"crossychain/x/leaderboard/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return msgServer{Keeper: keeper}
}

// authenticate resolves the verified caller identity. An absent or
// malformed creator address means the call carries no verified identity.
func (k msgServer) authenticate(creator string) error {
	if creator == "" {
		return errorsmod.Wrap(types.ErrUnauthenticated, "missing creator address")
	}
	if _, err := k.addressCodec.StringToBytes(creator); err != nil {
		return errorsmod.Wrap(types.ErrUnauthenticated, "invalid creator address")
	}
	return nil
}
