package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// AddRewardDistributor authorizes addr to distribute rewards. Owner only.
func (k Keeper) AddRewardDistributor(ctx context.Context, caller, addr sdk.AccAddress) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if addr.Empty() {
		return errorsmod.Wrap(types.ErrInvalidInput, "distributor must not be empty")
	}
	return k.Distributors.Set(ctx, addr)
}

// RemoveRewardDistributor revokes addr's distribution rights. Owner only.
func (k Keeper) RemoveRewardDistributor(ctx context.Context, caller, addr sdk.AccAddress) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	return k.Distributors.Remove(ctx, addr)
}

// IsRewardDistributor reports whether addr may distribute rewards.
func (k Keeper) IsRewardDistributor(ctx context.Context, addr sdk.AccAddress) (bool, error) {
	return k.Distributors.Has(ctx, addr)
}

// DistributeReward credits a reward to the to account. The caller must be a
// registered distributor. Rewards are minted rather than moved from the
// distributor's balance, so the distributor needs no funding and the
// receiver's lock state does not apply.
func (k Keeper) DistributeReward(ctx context.Context, caller, to sdk.AccAddress, amount sdkmath.Int) error {
	isDistributor, err := k.IsRewardDistributor(ctx, caller)
	if err != nil {
		return err
	}
	if !isDistributor {
		return errorsmod.Wrapf(types.ErrUnauthorized, "caller %s is not a reward distributor", caller)
	}
	if to.Empty() {
		return errorsmod.Wrap(types.ErrInvalidReceiver, "cannot distribute to the empty address")
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	if err := k.credit(ctx, to, amount); err != nil {
		return err
	}
	supply, err := k.GetTotalSupply(ctx)
	if err != nil {
		return err
	}
	if err := k.TotalSupply.Set(ctx, supply.Add(amount)); err != nil {
		return err
	}

	delegate, err := k.DelegateOf(ctx, to)
	if err != nil {
		return err
	}
	if err := k.moveVotingPower(ctx, nil, delegate, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardDistributed,
		sdk.NewAttribute(types.AttributeKeyDistributor, caller.String()),
		sdk.NewAttribute(types.AttributeKeyTo, to.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	k.Logger(ctx).Debug("distributed reward", "distributor", caller.String(), "to", to.String(), "amount", amount.String())

	return nil
}
