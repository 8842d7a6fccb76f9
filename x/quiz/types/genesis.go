package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/samber/lo"
)

// QuizRecord pairs a quiz id with its definition in genesis.
type QuizRecord struct {
	ID   uint64 `json:"id"`
	Quiz Quiz   `json:"quiz"`
}

// GenesisState is the module's genesis state.
type GenesisState struct {
	Owner   string       `json:"owner"`
	Quizzes []QuizRecord `json:"quizzes"`
}

// DefaultGenesisState returns genesis state with default values.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Quizzes: []QuizRecord{},
	}
}

// Validate validates genesis parameters.
func (m *GenesisState) Validate() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "invalid owner address: %s", err)
	}

	ids := lo.Map(m.Quizzes, func(r QuizRecord, _ int) uint64 {
		return r.ID
	})
	if len(lo.Uniq(ids)) != len(ids) {
		return errorsmod.Wrap(ErrInvalidInput, "duplicate quiz id")
	}

	for _, record := range m.Quizzes {
		if err := record.Quiz.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "quiz %d", record.ID)
		}
		if record.Quiz.Version == 0 {
			return errorsmod.Wrapf(ErrInvalidInput, "quiz %d has version 0", record.ID)
		}
	}

	return nil
}
