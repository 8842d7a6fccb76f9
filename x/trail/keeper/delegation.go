package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// DelegateOf returns the delegate chosen by addr, nil when none is set.
func (k Keeper) DelegateOf(ctx context.Context, addr sdk.AccAddress) (sdk.AccAddress, error) {
	delegate, err := k.Delegates.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sdk.AccAddress(delegate), nil
}

// Delegate assigns the caller's voting power to the to account. An empty to
// clears the delegation, meaning no one receives the caller's power. The
// caller's current balance worth of power moves from the old delegate's
// checkpoint series to the new one.
func (k Keeper) Delegate(ctx context.Context, caller, to sdk.AccAddress) error {
	oldDelegate, err := k.DelegateOf(ctx, caller)
	if err != nil {
		return err
	}

	if to.Empty() {
		if err := k.Delegates.Remove(ctx, caller); err != nil {
			return err
		}
	} else {
		if err := k.Delegates.Set(ctx, caller, to); err != nil {
			return err
		}
	}

	balance, err := k.GetBalance(ctx, caller)
	if err != nil {
		return err
	}
	if err := k.moveVotingPower(ctx, oldDelegate, to, balance); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDelegateChanged,
		sdk.NewAttribute(types.AttributeKeyDelegator, caller.String()),
		sdk.NewAttribute(types.AttributeKeyDelegate, to.String()),
	))

	return nil
}

// GetVotes returns the delegate's current voting power, zero if it has no
// checkpoint history.
func (k Keeper) GetVotes(ctx context.Context, addr sdk.AccAddress) (sdkmath.Int, error) {
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr).Descending()
	return k.firstCheckpoint(ctx, rng)
}

// GetPastVotes returns the delegate's voting power as of atUnix, taken from
// the most recent checkpoint at or before that time.
func (k Keeper) GetPastVotes(ctx context.Context, addr sdk.AccAddress, atUnix uint64) (sdkmath.Int, error) {
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, uint64](addr).
		EndInclusive(atUnix).
		Descending()
	return k.firstCheckpoint(ctx, rng)
}

func (k Keeper) firstCheckpoint(
	ctx context.Context,
	rng *collections.PairRange[sdk.AccAddress, uint64],
) (sdkmath.Int, error) {
	iter, err := k.Checkpoints.Iterate(ctx, rng)
	if err != nil {
		return sdkmath.Int{}, err
	}
	defer iter.Close()

	if !iter.Valid() {
		return sdkmath.ZeroInt(), nil
	}
	return iter.Value()
}

// moveVotingPower shifts amount of voting power between two delegates,
// appending one checkpoint per affected side at the current block time. A nil
// side means the power appears from, or disappears into, undelegated balance.
func (k Keeper) moveVotingPower(ctx context.Context, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsZero() || from.Equals(to) {
		return nil
	}

	blockTime := uint64(sdk.UnwrapSDKContext(ctx).BlockTime().Unix())

	if !from.Empty() {
		power, err := k.GetVotes(ctx, from)
		if err != nil {
			return err
		}
		if err := k.Checkpoints.Set(ctx, collections.Join(from, blockTime), power.Sub(amount)); err != nil {
			return err
		}
	}
	if !to.Empty() {
		power, err := k.GetVotes(ctx, to)
		if err != nil {
			return err
		}
		if err := k.Checkpoints.Set(ctx, collections.Join(to, blockTime), power.Add(amount)); err != nil {
			return err
		}
	}

	return nil
}
