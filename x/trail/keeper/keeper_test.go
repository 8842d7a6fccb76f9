package keeper_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/trailnet/trail-chain/testutil/keeper"
	trailkeeper "github.com/trailnet/trail-chain/x/trail/keeper"
	"github.com/trailnet/trail-chain/x/trail/types"
)

func setupKeeper(t *testing.T) (trailkeeper.Keeper, sdk.Context, sdk.AccAddress) {
	k, ctx := keepertest.TrailKeeper(t)
	owner := randomAddress()
	require.NoError(t, k.InitGenesis(ctx, types.GenesisState{Owner: owner.String()}))
	return k, ctx, owner
}

func randomAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}
