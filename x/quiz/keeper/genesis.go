package keeper

import (
	"context"

	"github.com/trailnet/trail-chain/x/quiz/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Owner.Set(ctx, genState.Owner); err != nil {
		return err
	}
	for _, record := range genState.Quizzes {
		if err := k.Quizzes.Set(ctx, record.ID, record.Quiz); err != nil {
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

	err = k.Quizzes.Walk(ctx, nil, func(id uint64, quiz types.Quiz) (bool, error) {
		genesis.Quizzes = append(genesis.Quizzes, types.QuizRecord{ID: id, Quiz: quiz})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return genesis, nil
}
