package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/trailnet/trail-chain/pkg/collcodec"
	"github.com/trailnet/trail-chain/x/quiz/types"
)

// Keeper of the module.
type Keeper struct {
	storeService sdkstore.KVStoreService

	// moduleAddress is the principal the quiz engine acts as when paying
	// rewards on the ledger. The deployer must register it as a reward
	// distributor there.
	moduleAddress sdk.AccAddress

	// keepers
	ledgerKeeper types.LedgerKeeper

	// collections
	Schema   collections.Schema
	Owner    collections.Item[string]
	Quizzes  collections.Map[uint64, types.Quiz]
	Attempts collections.Map[collections.Pair[sdk.AccAddress, uint64], types.Attempt]
}

// NewKeeper returns a new keeper object providing storage options required by the module.
func NewKeeper(storeService sdkstore.KVStoreService, ledgerKeeper types.LedgerKeeper) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:  storeService,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
		ledgerKeeper:  ledgerKeeper,

		Owner: collections.NewItem(
			sb,
			types.OwnerKey,
			"owner",
			collections.StringValue,
		),
		Quizzes: collections.NewMap(
			sb,
			types.QuizzesKey,
			"quizzes",
			collections.Uint64Key,
			collcodec.JSONValue[types.Quiz]("quiz"),
		),
		Attempts: collections.NewMap(
			sb,
			types.AttemptsKey,
			"attempts",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			collcodec.JSONValue[types.Attempt]("attempt"),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// ModuleAddress returns the principal the quiz engine pays rewards as.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// Logger returns the module logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
