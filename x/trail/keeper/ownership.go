package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// IsOwner reports whether addr is the current ledger owner.
func (k Keeper) IsOwner(ctx context.Context, addr sdk.AccAddress) (bool, error) {
	owner, err := k.Owner.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return owner == addr.String(), nil
}

// TransferOwnership moves ownership to newOwner. Single step, owner only.
func (k Keeper) TransferOwnership(ctx context.Context, caller, newOwner sdk.AccAddress) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if newOwner.Empty() {
		return errorsmod.Wrap(types.ErrInvalidInput, "new owner must not be empty")
	}

	if err := k.Owner.Set(ctx, newOwner.String()); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOwnershipTransferred,
		sdk.NewAttribute(types.AttributeKeyFrom, caller.String()),
		sdk.NewAttribute(types.AttributeKeyOwner, newOwner.String()),
	))

	return nil
}

func (k Keeper) ensureOwner(ctx context.Context, caller sdk.AccAddress) error {
	ok, err := k.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return errorsmod.Wrapf(types.ErrUnauthorized, "caller %s is not the owner", caller)
	}
	return nil
}
