package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// permitSignDoc is the domain separated message a permit signature covers.
// Binding the chain id, module name, token name, and permit version prevents
// replaying a signature on another chain or another permit-capable module.
type permitSignDoc struct {
	ChainID  string      `json:"chain_id"`
	Module   string      `json:"module"`
	Name     string      `json:"name"`
	Version  string      `json:"version"`
	Owner    string      `json:"owner"`
	Spender  string      `json:"spender"`
	Value    sdkmath.Int `json:"value"`
	Nonce    uint64      `json:"nonce"`
	Deadline uint64      `json:"deadline"`
}

// PermitSignBytes returns the canonical bytes the permit owner must sign.
// The nonce is the owner's current ledger nonce, so the bytes differ for
// every successful permit.
func PermitSignBytes(
	chainID string,
	owner, spender sdk.AccAddress,
	value sdkmath.Int,
	nonce, deadline uint64,
) []byte {
	b, err := json.Marshal(permitSignDoc{
		ChainID:  chainID,
		Module:   ModuleName,
		Name:     TokenName,
		Version:  PermitVersion,
		Owner:    owner.String(),
		Spender:  spender.String(),
		Value:    value,
		Nonce:    nonce,
		Deadline: deadline,
	})
	if err != nil {
		panic(err)
	}
	return sdk.MustSortJSON(b)
}
