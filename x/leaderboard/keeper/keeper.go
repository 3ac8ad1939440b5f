package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"crossychain/x/leaderboard/types"
)

// Keeper owns the wallet -> PlayerRecord ledger and module params.
//
// Handlers perform no locking: the chain serializes execution, so each
// call is a single read-decide-write unit.
type Keeper struct {
	storeService corestore.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte

	Schema  collections.Schema
	Params  collections.Item[types.Params]
	Players collections.Map[string, types.PlayerRecord]
}

// Records and params are stored as JSON bytes because they are not
// protobuf messages; codec.CollValue is not applicable without
// generated code.

var _ collcodec.ValueCodec[types.PlayerRecord] = playerValueCodec{}

type playerValueCodec struct{}

func (playerValueCodec) Encode(value types.PlayerRecord) ([]byte, error) { return json.Marshal(value) }
func (playerValueCodec) Decode(bz []byte) (types.PlayerRecord, error) {
	var r types.PlayerRecord
	return r, json.Unmarshal(bz, &r)
}
func (c playerValueCodec) EncodeJSON(value types.PlayerRecord) ([]byte, error) {
	return c.Encode(value)
}
func (c playerValueCodec) DecodeJSON(bz []byte) (types.PlayerRecord, error) { return c.Decode(bz) }
func (playerValueCodec) Stringify(value types.PlayerRecord) string {
	return fmt.Sprintf("high_score=%d,games_played=%d", value.HighScore, value.GamesPlayed)
}
func (playerValueCodec) ValueType() string { return "leaderboard/PlayerRecord" }

var _ collcodec.ValueCodec[types.Params] = paramsValueCodec{}

type paramsValueCodec struct{}

func (paramsValueCodec) Encode(value types.Params) ([]byte, error) { return json.Marshal(value) }
func (paramsValueCodec) Decode(bz []byte) (types.Params, error) {
	var p types.Params
	return p, json.Unmarshal(bz, &p)
}
func (c paramsValueCodec) EncodeJSON(value types.Params) ([]byte, error) { return c.Encode(value) }
func (c paramsValueCodec) DecodeJSON(bz []byte) (types.Params, error)    { return c.Decode(bz) }
func (paramsValueCodec) Stringify(value types.Params) string {
	return fmt.Sprintf("max_replay_bytes=%d", value.MaxReplayBytes)
}
func (paramsValueCodec) ValueType() string { return "leaderboard/Params" }

// NewKeeper creates a new leaderboard module Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,

		Params:  collections.NewItem(sb, types.ParamsKey, "params", paramsValueCodec{}),
		Players: collections.NewMap(sb, types.PlayersKeyPrefix, "players", collections.StringKey, playerValueCodec{}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetPlayer returns the record for a wallet, or the zero record when none
// is stored yet. Records are created lazily; only an accepted mutation
// persists one.
func (k Keeper) GetPlayer(ctx context.Context, player string) (types.PlayerRecord, error) {
	record, err := k.Players.Get(ctx, player)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PlayerRecord{}, nil
		}
		return types.PlayerRecord{}, err
	}
	return record, nil
}

// SetPlayer stores the full record as a single write.
func (k Keeper) SetPlayer(ctx context.Context, player string, record types.PlayerRecord) error {
	return k.Players.Set(ctx, player, record)
}

// HasPlayer reports whether a record was ever persisted for the wallet.
func (k Keeper) HasPlayer(ctx context.Context, player string) (bool, error) {
	return k.Players.Has(ctx, player)
}

// WalkPlayers visits every stored record in store key order.
func (k Keeper) WalkPlayers(ctx context.Context, fn func(player string, record types.PlayerRecord) (stop bool, err error)) error {
	return k.Players.Walk(ctx, nil, fn)
}

// PlayerCount returns the cardinality of the player key set.
func (k Keeper) PlayerCount(ctx context.Context) (uint64, error) {
	var count uint64
	err := k.Players.Walk(ctx, nil, func(string, types.PlayerRecord) (bool, error) {
		count++
		return false, nil
	})
	return count, err
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}
