package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/samber/lo"
)

// Balance is a single account balance in genesis.
type Balance struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
}

// GenesisState is the module's genesis state.
type GenesisState struct {
	Owner        string    `json:"owner"`
	Balances     []Balance `json:"balances"`
	Distributors []string  `json:"distributors"`
}

// DefaultGenesisState returns genesis state with default values.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Balances:     []Balance{},
		Distributors: []string{},
	}
}

// Validate validates genesis parameters.
func (m *GenesisState) Validate() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "invalid owner address: %s", err)
	}

	balanceAddresses := lo.Map(m.Balances, func(b Balance, _ int) string {
		return b.Address
	})
	if len(lo.Uniq(balanceAddresses)) != len(balanceAddresses) {
		return errorsmod.Wrap(ErrInvalidInput, "duplicate balance address")
	}
	for _, b := range m.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return errorsmod.Wrapf(ErrInvalidInput, "invalid balance address: %s", err)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return errorsmod.Wrapf(ErrInvalidInput, "invalid balance amount for %s", b.Address)
		}
	}

	if len(lo.Uniq(m.Distributors)) != len(m.Distributors) {
		return errorsmod.Wrap(ErrInvalidInput, "duplicate distributor address")
	}
	for _, addr := range m.Distributors {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return errorsmod.Wrapf(ErrInvalidInput, "invalid distributor address: %s", err)
		}
	}

	return nil
}
