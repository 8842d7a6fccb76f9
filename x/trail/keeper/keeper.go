package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// Keeper of the module.
type Keeper struct {
	storeService sdkstore.KVStoreService

	// collections
	Schema       collections.Schema
	Owner        collections.Item[string]
	TotalSupply  collections.Item[sdkmath.Int]
	Balances     collections.Map[sdk.AccAddress, sdkmath.Int]
	LockedUntil  collections.Map[sdk.AccAddress, uint64]
	Delegates    collections.Map[sdk.AccAddress, []byte]
	Checkpoints  collections.Map[collections.Pair[sdk.AccAddress, uint64], sdkmath.Int]
	Allowances   collections.Map[collections.Pair[sdk.AccAddress, sdk.AccAddress], sdkmath.Int]
	Nonces       collections.Map[sdk.AccAddress, uint64]
	Distributors collections.KeySet[sdk.AccAddress]
}

// NewKeeper returns a new keeper object providing storage options required by the module.
func NewKeeper(storeService sdkstore.KVStoreService) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,

		Owner: collections.NewItem(
			sb,
			types.OwnerKey,
			"owner",
			collections.StringValue,
		),
		TotalSupply: collections.NewItem(
			sb,
			types.TotalSupplyKey,
			"total_supply",
			sdk.IntValue,
		),
		Balances: collections.NewMap(
			sb,
			types.BalancesKey,
			"balances",
			sdk.AccAddressKey,
			sdk.IntValue,
		),
		LockedUntil: collections.NewMap(
			sb,
			types.LockedUntilKey,
			"locked_until",
			sdk.AccAddressKey,
			collections.Uint64Value,
		),
		Delegates: collections.NewMap(
			sb,
			types.DelegatesKey,
			"delegates",
			sdk.AccAddressKey,
			collections.BytesValue,
		),
		Checkpoints: collections.NewMap(
			sb,
			types.CheckpointsKey,
			"checkpoints",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			sdk.IntValue,
		),
		Allowances: collections.NewMap(
			sb,
			types.AllowancesKey,
			"allowances",
			collections.PairKeyCodec(sdk.AccAddressKey, sdk.AccAddressKey),
			sdk.IntValue,
		),
		Nonces: collections.NewMap(
			sb,
			types.NoncesKey,
			"nonces",
			sdk.AccAddressKey,
			collections.Uint64Value,
		),
		Distributors: collections.NewKeySet(
			sb,
			types.DistributorsKey,
			"distributors",
			sdk.AccAddressKey,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns the module logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
