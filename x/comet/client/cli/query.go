package cli

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/CometDEX/comet-contracts-v1/fixmath"
	"github.com/CometDEX/comet-contracts-v1/x/comet/pricing"
	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// GetQueryCmd returns the cli query commands for the comet module
func GetQueryCmd() *cobra.Command {
	cometQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the comet module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cometQueryCmd.AddCommand(
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryRecord(),
		GetCmdQueryShareBalance(),
		GetCmdQuerySpotPrice(),
	)

	return cometQueryCmd
}

func queryPool(clientCtx client.Context, poolID uint64) (*types.Pool, error) {
	bz, _, err := clientCtx.QueryStore(types.PoolKey(poolID), types.StoreKey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, fmt.Errorf("pool %d not found", poolID)
	}
	var pool types.Pool
	if err := pool.Unmarshal(bz); err != nil {
		return nil, err
	}
	return &pool, nil
}

func queryRecord(clientCtx client.Context, poolID uint64, denom string) (*types.Record, error) {
	bz, _, err := clientCtx.QueryStore(types.RecordKey(poolID, denom), types.StoreKey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, fmt.Errorf("token %s is not bound to pool %d", denom, poolID)
	}
	var rec types.Record
	if err := rec.Unmarshal(bz); err != nil {
		return nil, err
	}
	return &rec, nil
}

func printJSON(clientCtx client.Context, value any) error {
	bz, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// GetCmdQueryPool returns the command to query a single pool
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a pool by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			pool, err := queryPool(clientCtx, poolID)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, pool)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to list all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List all pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			countBz, _, err := clientCtx.QueryStore(types.PoolCountKey, types.StoreKey)
			if err != nil {
				return err
			}
			var next uint64 = 1
			if countBz != nil {
				next = binary.BigEndian.Uint64(countBz)
			}

			pools := make([]types.Pool, 0, next-1)
			for poolID := uint64(1); poolID < next; poolID++ {
				pool, err := queryPool(clientCtx, poolID)
				if err != nil {
					continue
				}
				pools = append(pools, *pool)
			}
			return printJSON(clientCtx, pools)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRecord returns the command to query a token record
func GetCmdQueryRecord() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record [pool-id] [token]",
		Short: "Query the record of a bound token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			rec, err := queryRecord(clientCtx, poolID, args[1])
			if err != nil {
				return err
			}
			return printJSON(clientCtx, rec)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryShareBalance returns the command to query a share balance
func GetCmdQueryShareBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share-balance [pool-id] [address]",
		Short: "Query an address' pool share balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			addr, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return err
			}
			bz, _, err := clientCtx.QueryStore(types.ShareBalanceKey(poolID, addr), types.StoreKey)
			if err != nil {
				return err
			}
			balance := "0"
			if bz != nil {
				var amount math.Int
				if err := amount.Unmarshal(bz); err != nil {
					return err
				}
				balance = amount.String()
			}
			return clientCtx.PrintString(balance + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySpotPrice returns the command to compute the spot price between
// two bound tokens from on-chain state.
func GetCmdQuerySpotPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-price [pool-id] [token-in] [token-out]",
		Short: "Query the fee-adjusted spot price between two bound tokens",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			pool, err := queryPool(clientCtx, poolID)
			if err != nil {
				return err
			}
			inRec, err := queryRecord(clientCtx, poolID, args[1])
			if err != nil {
				return err
			}
			outRec, err := queryRecord(clientCtx, poolID, args[2])
			if err != nil {
				return err
			}
			price18, err := pricing.SpotPrice(inRec.Balance, inRec.Denorm, outRec.Balance, outRec.Denorm, pool.SwapFeeBone())
			if err != nil {
				return err
			}
			price, err := fixmath.DownscaleCeil(price18, fixmath.StroopScalar)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(price.String() + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
