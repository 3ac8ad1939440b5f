package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
)

var (
	ModuleCdc = codec.NewProtoCodec(types.NewInterfaceRegistry())
)

func RegisterLegacyAminoCodec(_ *codec.LegacyAmino) {}
func RegisterCodec(_ *codec.LegacyAmino)            {}

func RegisterInterfaces(_ types.InterfaceRegistry) {
	// Messages are hand-encoded JSON without generated service
	// descriptors; nothing to register until proto definitions exist.
}
