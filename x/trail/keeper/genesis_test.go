package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/trailnet/trail-chain/testutil/keeper"
	"github.com/trailnet/trail-chain/x/trail/types"
)

func TestInitExportGenesis(t *testing.T) {
	requireT := require.New(t)

	k, ctx := keepertest.TrailKeeper(t)

	owner := randomAddress()
	holder := randomAddress()
	distributor := randomAddress()

	genState := types.GenesisState{
		Owner: owner.String(),
		Balances: []types.Balance{
			{Address: holder.String(), Amount: sdkmath.NewInt(250)},
		},
		Distributors: []string{distributor.String()},
	}
	requireT.NoError(genState.Validate())
	requireT.NoError(k.InitGenesis(ctx, genState))

	balance, err := k.GetBalance(ctx, holder)
	requireT.NoError(err)
	requireT.Equal(sdkmath.NewInt(250), balance)

	// supply is derived from genesis balances
	supply, err := k.GetTotalSupply(ctx)
	requireT.NoError(err)
	requireT.Equal(sdkmath.NewInt(250), supply)

	isDistributor, err := k.IsRewardDistributor(ctx, distributor)
	requireT.NoError(err)
	requireT.True(isDistributor)

	exported, err := k.ExportGenesis(ctx)
	requireT.NoError(err)
	requireT.Equal(genState.Owner, exported.Owner)
	requireT.ElementsMatch(genState.Balances, exported.Balances)
	requireT.ElementsMatch(genState.Distributors, exported.Distributors)
}
