package leaderboard

import (
	"encoding/json"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	leaderboardsimulation "crossychain/x/leaderboard/simulation"
	"crossychain/x/leaderboard/types"
)

// GenerateGenesisState creates a randomized GenState of the module.
func (AppModule) GenerateGenesisState(simState *module.SimulationState) {
	genesis := types.GenesisState{
		Params: types.DefaultParams(),
	}
	bz, err := json.Marshal(&genesis)
	if err != nil {
		panic(err)
	}
	simState.GenState[types.ModuleName] = bz
}

// RegisterStoreDecoder registers a decoder.
func (am AppModule) RegisterStoreDecoder(_ simtypes.StoreDecoderRegistry) {}

// WeightedOperations returns all the leaderboard module operations with their respective weights.
func (am AppModule) WeightedOperations(simState module.SimulationState) []simtypes.WeightedOperation {
	operations := make([]simtypes.WeightedOperation, 0)
	const (
		opWeightMsgSaveScore          = "op_weight_msg_save_score"
		defaultWeightMsgSaveScore int = 100
	)

	var weightMsgSaveScore int
	simState.AppParams.GetOrGenerate(opWeightMsgSaveScore, &weightMsgSaveScore, nil,
		func(_ *rand.Rand) {
			weightMsgSaveScore = defaultWeightMsgSaveScore
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgSaveScore,
		leaderboardsimulation.SimulateMsgSaveScore(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))
	const (
		opWeightMsgRegisterPlayer          = "op_weight_msg_register_player"
		defaultWeightMsgRegisterPlayer int = 50
	)

	var weightMsgRegisterPlayer int
	simState.AppParams.GetOrGenerate(opWeightMsgRegisterPlayer, &weightMsgRegisterPlayer, nil,
		func(_ *rand.Rand) {
			weightMsgRegisterPlayer = defaultWeightMsgRegisterPlayer
		},
	)
	operations = append(operations, simulation.NewWeightedOperation(
		weightMsgRegisterPlayer,
		leaderboardsimulation.SimulateMsgRegisterPlayer(am.authKeeper, am.bankKeeper, am.keeper, simState.TxConfig),
	))

	return operations
}

// ProposalMsgs returns msgs used for governance proposals for simulations.
func (am AppModule) ProposalMsgs(simState module.SimulationState) []simtypes.WeightedProposalMsg {
	return []simtypes.WeightedProposalMsg{}
}
