package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/trailnet/trail-chain/x/trail/types"
)

func TestKeeper_RewardDistributorSet(t *testing.T) {
	requireT := require.New(t)

	k, ctx, owner := setupKeeper(t)
	distributor := randomAddress()

	err := k.AddRewardDistributor(ctx, distributor, distributor)
	requireT.ErrorIs(err, types.ErrUnauthorized)

	requireT.NoError(k.AddRewardDistributor(ctx, owner, distributor))
	isDistributor, err := k.IsRewardDistributor(ctx, distributor)
	requireT.NoError(err)
	requireT.True(isDistributor)

	requireT.NoError(k.RemoveRewardDistributor(ctx, owner, distributor))
	isDistributor, err = k.IsRewardDistributor(ctx, distributor)
	requireT.NoError(err)
	requireT.False(isDistributor)
}

func TestKeeper_DistributeReward(t *testing.T) {
	requireT := require.New(t)

	k, ctx, owner := setupKeeper(t)
	distributor := randomAddress()
	user := randomAddress()

	// gating is independent of amount and recipient
	err := k.DistributeReward(ctx, distributor, user, sdkmath.NewInt(100))
	requireT.ErrorIs(err, types.ErrUnauthorized)

	requireT.NoError(k.AddRewardDistributor(ctx, owner, distributor))

	err = k.DistributeReward(ctx, distributor, sdk.AccAddress{}, sdkmath.NewInt(100))
	requireT.ErrorIs(err, types.ErrInvalidReceiver)

	// zero amount distribution is a no-op credit
	requireT.NoError(k.DistributeReward(ctx, distributor, user, sdkmath.ZeroInt()))
	balance, err := k.GetBalance(ctx, user)
	requireT.NoError(err)
	requireT.True(balance.IsZero())

	// rewards are minted, the distributor holds no balance
	requireT.NoError(k.DistributeReward(ctx, distributor, user, sdkmath.NewInt(100)))

	balance, err = k.GetBalance(ctx, user)
	requireT.NoError(err)
	requireT.Equal(sdkmath.NewInt(100), balance)

	supply, err := k.GetTotalSupply(ctx)
	requireT.NoError(err)
	requireT.Equal(sdkmath.NewInt(100), supply)

	// revoked distributors lose the capability immediately
	requireT.NoError(k.RemoveRewardDistributor(ctx, owner, distributor))
	err = k.DistributeReward(ctx, distributor, user, sdkmath.NewInt(1))
	requireT.ErrorIs(err, types.ErrUnauthorized)
}

func TestKeeper_DistributeRewardTracksDelegatedPower(t *testing.T) {
	requireT := require.New(t)

	k, ctx, owner := setupKeeper(t)
	distributor := randomAddress()
	user := randomAddress()

	requireT.NoError(k.AddRewardDistributor(ctx, owner, distributor))
	requireT.NoError(k.Delegate(ctx, user, user))

	requireT.NoError(k.DistributeReward(ctx, distributor, user, sdkmath.NewInt(70)))

	votes, err := k.GetVotes(ctx, user)
	requireT.NoError(err)
	requireT.Equal(sdkmath.NewInt(70), votes)
}
