package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/trailnet/trail-chain/x/trail/types"
)

func TestGenesisStateValidate(t *testing.T) {
	addr1 := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String()
	addr2 := sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String()

	testCases := []struct {
		name      string
		genState  types.GenesisState
		expectErr bool
	}{
		{
			name: "valid",
			genState: types.GenesisState{
				Owner: addr1,
				Balances: []types.Balance{
					{Address: addr2, Amount: sdkmath.NewInt(10)},
				},
				Distributors: []string{addr2},
			},
		},
		{
			name:      "missing_owner",
			genState:  types.GenesisState{},
			expectErr: true,
		},
		{
			name: "invalid_owner",
			genState: types.GenesisState{
				Owner: "not-an-address",
			},
			expectErr: true,
		},
		{
			name: "duplicate_balance_address",
			genState: types.GenesisState{
				Owner: addr1,
				Balances: []types.Balance{
					{Address: addr2, Amount: sdkmath.NewInt(10)},
					{Address: addr2, Amount: sdkmath.NewInt(20)},
				},
			},
			expectErr: true,
		},
		{
			name: "negative_balance",
			genState: types.GenesisState{
				Owner: addr1,
				Balances: []types.Balance{
					{Address: addr2, Amount: sdkmath.NewInt(-1)},
				},
			},
			expectErr: true,
		},
		{
			name: "duplicate_distributor",
			genState: types.GenesisState{
				Owner:        addr1,
				Distributors: []string{addr2, addr2},
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
