package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/types/kv"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"crossychain/x/leaderboard/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the leaderboard module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		getLeaderboardCmd(),
		getPlayerCmd(),
		getPlayerCountCmd(),
		getParamsCmd(),
	)
	return cmd
}

func getLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [top-n]",
		Short: "Shows the top-N players ranked by high score",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			var topN uint32
			if len(args) == 1 {
				topN, err = cast.ToUint32E(args[0])
				if err != nil {
					return err
				}
			}

			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}
			entries, err := queryAllEntries(clientCtx)
			if err != nil {
				return err
			}

			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].HighScore > entries[j].HighScore
			})
			if topN == 0 {
				topN = params.DefaultLeaderboardSize
			}
			if topN > params.MaxLeaderboardSize {
				topN = params.MaxLeaderboardSize
			}
			if int(topN) < len(entries) {
				entries = entries[:topN]
			}

			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player [address]",
		Short: "Shows one wallet's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			key := append(types.PlayersKeyPrefix.Bytes(), []byte(args[0])...)
			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if len(bz) == 0 {
				return fmt.Errorf("no record for %s", args[0])
			}

			var record types.PlayerRecord
			if err := json.Unmarshal(bz, &record); err != nil {
				return err
			}
			out, err := json.MarshalIndent(record.Entry(args[0]), "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getPlayerCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player-count",
		Short: "Shows the number of registered players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			entries, err := queryAllEntries(clientCtx)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(fmt.Sprintf("%d\n", len(entries)))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}
			out, _ := json.Marshal(params)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// queryParams reads the params item from the raw store, falling back to
// defaults when unset.
func queryParams(clientCtx client.Context) (types.Params, error) {
	bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
	if err != nil || len(bz) == 0 {
		return types.DefaultParams(), nil
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

// queryAllEntries enumerates the players prefix with a store subspace
// query; ranking is computed client-side, matching the on-read model.
func queryAllEntries(clientCtx client.Context) ([]types.LeaderboardEntry, error) {
	resp, err := clientCtx.QueryABCI(abci.RequestQuery{
		Path: fmt.Sprintf("store/%s/subspace", types.StoreKey),
		Data: types.PlayersKeyPrefix.Bytes(),
	})
	if err != nil {
		return nil, err
	}

	var pairs kv.Pairs
	if err := pairs.Unmarshal(resp.Value); err != nil {
		return nil, err
	}

	prefixLen := len(types.PlayersKeyPrefix.Bytes())
	entries := make([]types.LeaderboardEntry, 0, len(pairs.Pairs))
	for _, pair := range pairs.Pairs {
		if len(pair.Key) <= prefixLen {
			continue
		}
		var record types.PlayerRecord
		if err := json.Unmarshal(pair.Value, &record); err != nil {
			return nil, err
		}
		entries = append(entries, record.Entry(string(pair.Key[prefixLen:])))
	}
	return entries, nil
}
