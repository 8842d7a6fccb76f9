package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Owner.Set(ctx, genState.Owner); err != nil {
		return err
	}

	supply := sdkmath.ZeroInt()
	for _, balance := range genState.Balances {
		addr, err := sdk.AccAddressFromBech32(balance.Address)
		if err != nil {
			return err
		}
		if err := k.Balances.Set(ctx, addr, balance.Amount); err != nil {
			return err
		}
		supply = supply.Add(balance.Amount)
	}
	if err := k.TotalSupply.Set(ctx, supply); err != nil {
		return err
	}

	for _, distributor := range genState.Distributors {
		addr, err := sdk.AccAddressFromBech32(distributor)
		if err != nil {
			return err
		}
		if err := k.Distributors.Set(ctx, addr); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesisState()

	owner, err := k.Owner.Get(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Owner = owner

	err = k.Balances.Walk(ctx, nil, func(addr sdk.AccAddress, amount sdkmath.Int) (bool, error) {
		genesis.Balances = append(genesis.Balances, types.Balance{
			Address: addr.String(),
			Amount:  amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Distributors.Walk(ctx, nil, func(addr sdk.AccAddress) (bool, error) {
		genesis.Distributors = append(genesis.Distributors, addr.String())
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return genesis, nil
}
