package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/trailnet/trail-chain/testutil/keeper"
	"github.com/trailnet/trail-chain/x/quiz/types"
)

func TestInitExportGenesis(t *testing.T) {
	requireT := require.New(t)

	quizKeeper, _, ctx := keepertest.QuizKeepers(t)
	owner := randomAddress()

	genState := types.GenesisState{
		Owner: owner.String(),
		Quizzes: []types.QuizRecord{
			{
				ID: 1,
				Quiz: types.Quiz{
					BaseReward:      sdkmath.NewInt(100),
					PassingScore:    70,
					CooldownSeconds: 3600,
					Version:         3,
				},
			},
		},
	}
	requireT.NoError(genState.Validate())
	requireT.NoError(quizKeeper.InitGenesis(ctx, genState))

	quiz, err := quizKeeper.GetQuiz(ctx, 1)
	requireT.NoError(err)
	requireT.Equal(uint64(3), quiz.Version)

	exported, err := quizKeeper.ExportGenesis(ctx)
	requireT.NoError(err)
	requireT.Equal(genState.Owner, exported.Owner)
	requireT.ElementsMatch(genState.Quizzes, exported.Quizzes)
}

func TestGenesisStateValidate(t *testing.T) {
	owner := randomAddress().String()

	testCases := []struct {
		name      string
		genState  types.GenesisState
		expectErr bool
	}{
		{
			name: "valid",
			genState: types.GenesisState{
				Owner: owner,
				Quizzes: []types.QuizRecord{
					{ID: 1, Quiz: types.Quiz{BaseReward: sdkmath.NewInt(10), Version: 1}},
				},
			},
		},
		{
			name:      "missing_owner",
			genState:  types.GenesisState{},
			expectErr: true,
		},
		{
			name: "duplicate_quiz_id",
			genState: types.GenesisState{
				Owner: owner,
				Quizzes: []types.QuizRecord{
					{ID: 1, Quiz: types.Quiz{BaseReward: sdkmath.NewInt(10), Version: 1}},
					{ID: 1, Quiz: types.Quiz{BaseReward: sdkmath.NewInt(20), Version: 2}},
				},
			},
			expectErr: true,
		},
		{
			name: "zero_version",
			genState: types.GenesisState{
				Owner: owner,
				Quizzes: []types.QuizRecord{
					{ID: 1, Quiz: types.Quiz{BaseReward: sdkmath.NewInt(10)}},
				},
			},
			expectErr: true,
		},
		{
			name: "nil_base_reward",
			genState: types.GenesisState{
				Owner: owner,
				Quizzes: []types.QuizRecord{
					{ID: 1, Quiz: types.Quiz{Version: 1}},
				},
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
