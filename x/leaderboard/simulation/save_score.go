package simulation

import (
	"fmt"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"crossychain/x/leaderboard/keeper"
	"crossychain/x/leaderboard/types"
)

// SimulateMsgSaveScore simulates a wallet submitting a finished game's score.
func SimulateMsgSaveScore(
	ak types.AuthKeeper,
	bk types.BankKeeper,
	k keeper.Keeper,
	txGen client.TxConfig,
) simtypes.Operation {
	return func(r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		// Random score between 1 and 100000; always carry a replay so
		// record-breaking submissions pass the evidence gate.
		score := uint32(r.Intn(100000) + 1)
		replay := fmt.Sprintf(`{"seed":%d,"frames":%d}`, r.Int63(), r.Intn(5000))

		msg := &types.MsgSaveScore{
			Creator:    simAccount.Address.String(),
			Score:      score,
			ReplayData: &replay,
			Timestamp:  uint64(ctx.BlockTime().Unix()),
		}

		txCtx := simulation.OperationInput{
			R:               r,
			App:             app,
			TxGen:           txGen,
			Cdc:             nil,
			Msg:             msg,
			Context:         ctx,
			SimAccount:      simAccount,
			AccountKeeper:   ak,
			Bankkeeper:      bk,
			ModuleName:      types.ModuleName,
			CoinsSpentInMsg: sdk.NewCoins(),
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}
