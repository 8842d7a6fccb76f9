package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// Mint creates amount new tokens on the to account. Owner only. Minting is
// unconditional creation, so the receiver's lock state is not consulted.
func (k Keeper) Mint(ctx context.Context, caller, to sdk.AccAddress, amount sdkmath.Int) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if to.Empty() {
		return errorsmod.Wrap(types.ErrInvalidReceiver, "cannot mint to the empty address")
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

	// voting power is only tracked once the receiver has delegated
	delegate, err := k.DelegateOf(ctx, to)
	if err != nil {
		return err
	}
	if err := k.moveVotingPower(ctx, nil, delegate, amount); err != nil {
		return err
	}

	k.emitTransfer(ctx, nil, to, amount)
	return nil
}

// Transfer moves amount from the caller to the to account.
func (k Keeper) Transfer(ctx context.Context, caller, to sdk.AccAddress, amount sdkmath.Int) error {
	return k.send(ctx, caller, to, amount)
}

// Approve sets the spender's allowance over the caller's tokens to value,
// replacing any previous allowance.
func (k Keeper) Approve(ctx context.Context, caller, spender sdk.AccAddress, value sdkmath.Int) error {
	if spender.Empty() {
		return errorsmod.Wrap(types.ErrInvalidInput, "spender must not be empty")
	}
	if err := validateAmount(value); err != nil {
		return err
	}
	return k.Allowances.Set(ctx, collections.Join(caller, spender), value)
}

// Allowance returns the spender's remaining allowance over the owner's tokens.
func (k Keeper) Allowance(ctx context.Context, owner, spender sdk.AccAddress) (sdkmath.Int, error) {
	allowance, err := k.Allowances.Get(ctx, collections.Join(owner, spender))
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	if err != nil {
		return sdkmath.Int{}, err
	}
	return allowance, nil
}

// TransferFrom moves amount from the from account to the to account, spending
// the caller's allowance. The from account's lock still applies.
func (k Keeper) TransferFrom(ctx context.Context, caller, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	allowance, err := k.Allowance(ctx, from, caller)
	if err != nil {
		return err
	}
	if allowance.LT(amount) {
		return errorsmod.Wrapf(
			types.ErrInsufficientBalance,
			"spender %s allowance %s is below %s", caller, allowance, amount,
		)
	}

	if err := k.send(ctx, from, to, amount); err != nil {
		return err
	}

	return k.Allowances.Set(ctx, collections.Join(from, caller), allowance.Sub(amount))
}

// LockTokens sets the account's lock-until timestamp. Owner only. A timestamp
// in the past is equivalent to no lock; expiry is a pure time comparison on
// the transfer path, no transaction is needed to unlock.
func (k Keeper) LockTokens(ctx context.Context, caller, account sdk.AccAddress, untilUnix uint64) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}

	if err := k.LockedUntil.Set(ctx, account, untilUnix); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTokensLocked,
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyLockedUntil, sdkmath.NewIntFromUint64(untilUnix).String()),
	))

	return nil
}

// GetBalance returns the account balance, zero if the account is unknown.
func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress) (sdkmath.Int, error) {
	balance, err := k.Balances.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	if err != nil {
		return sdkmath.Int{}, err
	}
	return balance, nil
}

// GetTotalSupply returns the total minted supply.
func (k Keeper) GetTotalSupply(ctx context.Context) (sdkmath.Int, error) {
	supply, err := k.TotalSupply.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	if err != nil {
		return sdkmath.Int{}, err
	}
	return supply, nil
}

// GetLockedUntil returns the account's lock-until unix timestamp, zero when unlocked.
func (k Keeper) GetLockedUntil(ctx context.Context, addr sdk.AccAddress) (uint64, error) {
	until, err := k.LockedUntil.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return until, nil
}

// send performs a balance movement between existing accounts. All failure
// conditions are checked before the first write.
func (k Keeper) send(ctx context.Context, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if to.Empty() {
		return errorsmod.Wrap(types.ErrInvalidReceiver, "cannot transfer to the empty address")
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	blockTime := uint64(sdk.UnwrapSDKContext(ctx).BlockTime().Unix())
	lockedUntil, err := k.GetLockedUntil(ctx, from)
	if err != nil {
		return err
	}
	if blockTime < lockedUntil {
		return errorsmod.Wrapf(types.ErrTokensLocked, "account %s is locked until %d", from, lockedUntil)
	}

	fromBalance, err := k.GetBalance(ctx, from)
	if err != nil {
		return err
	}
	if fromBalance.LT(amount) {
		return errorsmod.Wrapf(
			types.ErrInsufficientBalance,
			"account %s holds %s, cannot transfer %s", from, fromBalance, amount,
		)
	}

	if err := k.Balances.Set(ctx, from, fromBalance.Sub(amount)); err != nil {
		return err
	}
	if err := k.credit(ctx, to, amount); err != nil {
		return err
	}

	fromDelegate, err := k.DelegateOf(ctx, from)
	if err != nil {
		return err
	}
	toDelegate, err := k.DelegateOf(ctx, to)
	if err != nil {
		return err
	}
	if err := k.moveVotingPower(ctx, fromDelegate, toDelegate, amount); err != nil {
		return err
	}

	k.emitTransfer(ctx, from, to, amount)
	return nil
}

func (k Keeper) credit(ctx context.Context, to sdk.AccAddress, amount sdkmath.Int) error {
	balance, err := k.GetBalance(ctx, to)
	if err != nil {
		return err
	}
	return k.Balances.Set(ctx, to, balance.Add(amount))
}

func (k Keeper) emitTransfer(ctx context.Context, from, to sdk.AccAddress, amount sdkmath.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTransfer,
		sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
		sdk.NewAttribute(types.AttributeKeyTo, to.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
}

func validateAmount(amount sdkmath.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errorsmod.Wrap(types.ErrInvalidInput, "amount must be a non-negative integer")
	}
	return nil
}
