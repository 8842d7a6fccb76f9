package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/trail/types"
)

// GetNonce returns the owner's current permit nonce.
func (k Keeper) GetNonce(ctx context.Context, addr sdk.AccAddress) (uint64, error) {
	nonce, err := k.Nonces.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return nonce, nil
}

// Permit grants spender an allowance of value over owner's tokens based on an
// off-band signature instead of an on-ledger Approve call. The signature must
// cover the domain separated sign doc built over the owner's current nonce;
// the nonce is consumed on success, so an identical payload cannot be
// replayed.
func (k Keeper) Permit(
	ctx context.Context,
	owner, spender sdk.AccAddress,
	value sdkmath.Int,
	deadlineUnix uint64,
	pubKey cryptotypes.PubKey,
	signature []byte,
) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if uint64(sdkCtx.BlockTime().Unix()) > deadlineUnix {
		return errorsmod.Wrapf(types.ErrExpired, "permit deadline %d has passed", deadlineUnix)
	}
	if spender.Empty() {
		return errorsmod.Wrap(types.ErrInvalidInput, "spender must not be empty")
	}
	if err := validateAmount(value); err != nil {
		return err
	}

	if pubKey == nil {
		return errorsmod.Wrap(types.ErrInvalidSignature, "missing public key")
	}
	signer := sdk.AccAddress(pubKey.Address())
	if !signer.Equals(owner) {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "signer %s is not the stated owner %s", signer, owner)
	}

	nonce, err := k.GetNonce(ctx, owner)
	if err != nil {
		return err
	}
	signBytes := types.PermitSignBytes(sdkCtx.ChainID(), owner, spender, value, nonce, deadlineUnix)
	if !pubKey.VerifySignature(signBytes, signature) {
		return errorsmod.Wrapf(types.ErrInvalidSignature, "signature does not verify for nonce %d", nonce)
	}

	if err := k.Allowances.Set(ctx, collections.Join(owner, spender), value); err != nil {
		return err
	}
	return k.Nonces.Set(ctx, owner, nonce+1)
}
