// Package keeper provides store-backed keeper fixtures for unit tests. It
// plays the role a full simapp would in a wired chain, without requiring the
// host app.
package keeper

import (
	"testing"
	"time"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdktestutil "github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	quizkeeper "github.com/trailnet/trail-chain/x/quiz/keeper"
	quiztypes "github.com/trailnet/trail-chain/x/quiz/types"
	trailkeeper "github.com/trailnet/trail-chain/x/trail/keeper"
	trailtypes "github.com/trailnet/trail-chain/x/trail/types"
)

// ChainID is the chain id bound into permit sign docs in tests.
const ChainID = "trail-test-1"

// BlockTime is the initial block time of fixture contexts.
var BlockTime = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

// TrailKeeper returns a trail keeper backed by a fresh in-memory store.
func TrailKeeper(t testing.TB) (trailkeeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(trailtypes.StoreKey)
	testCtx := sdktestutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_test"))

	k := trailkeeper.NewKeeper(runtime.NewKVStoreService(key))
	ctx := testCtx.Ctx.WithChainID(ChainID).WithBlockTime(BlockTime)

	return k, ctx
}

// QuizKeepers returns a quiz keeper wired to a trail keeper, both backed by
// fresh in-memory stores mounted on a shared context.
func QuizKeepers(t testing.TB) (quizkeeper.Keeper, trailkeeper.Keeper, sdk.Context) {
	trailKey := storetypes.NewKVStoreKey(trailtypes.StoreKey)
	quizKey := storetypes.NewKVStoreKey(quiztypes.StoreKey)

	ctx := sdktestutil.DefaultContextWithKeys(
		map[string]*storetypes.KVStoreKey{
			trailtypes.StoreKey: trailKey,
			quiztypes.StoreKey:  quizKey,
		},
		map[string]*storetypes.TransientStoreKey{
			"transient_test": storetypes.NewTransientStoreKey("transient_test"),
		},
		nil,
	)

	trailKeeperInstance := trailkeeper.NewKeeper(runtime.NewKVStoreService(trailKey))
	quizKeeperInstance := quizkeeper.NewKeeper(runtime.NewKVStoreService(quizKey), trailKeeperInstance)

	return quizKeeperInstance, trailKeeperInstance, ctx.WithChainID(ChainID).WithBlockTime(BlockTime)
}
