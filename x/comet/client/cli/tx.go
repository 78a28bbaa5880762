package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/CometDEX/comet-contracts-v1/x/comet/types"
)

// GetTxCmd returns the transaction commands for the comet module
func GetTxCmd() *cobra.Command {
	cometTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Comet pool transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cometTxCmd.AddCommand(
		CmdCreatePool(),
		CmdInitPool(),
		CmdBind(),
		CmdRebind(),
		CmdUnbind(),
		CmdFinalize(),
		CmdSetSwapFee(),
		CmdSetController(),
		CmdSetPublicSwap(),
		CmdSetFreezeStatus(),
		CmdGulp(),
		CmdJoinPool(),
		CmdExitPool(),
		CmdSwapExactAmountIn(),
		CmdSwapExactAmountOut(),
		CmdDepositGivenTokenIn(),
		CmdDepositGivenLpOut(),
		CmdWithdrawGivenLpIn(),
		CmdWithdrawGivenTokenOut(),
		CmdTransferShares(),
		CmdTransferSharesFrom(),
		CmdApproveShares(),
	)

	return cometTxCmd
}

func parseInt(arg, name string) (math.Int, error) {
	value, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	return value, nil
}

func parseIntList(arg, name string) ([]math.Int, error) {
	parts := strings.Split(arg, ",")
	values := make([]math.Int, len(parts))
	for i, part := range parts {
		value, err := parseInt(strings.TrimSpace(part), name)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func parsePoolID(arg string) (uint64, error) {
	poolID, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pool id: %s", arg)
	}
	return poolID, nil
}

// CmdCreatePool returns a CLI command handler for opening a pool in setup
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [controller]",
		Short: "Create a new weighted pool in the setup state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdInitPool returns a CLI command handler for one-shot pool initialization
func CmdInitPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-pool [controller] [tokens] [weights] [balances] [swap-fee]",
		Short: "Create, fund and finalize a pool in one shot",
		Long: `Create, fund and finalize a pool. Tokens, weights and balances are
comma-separated lists; weights are normalized 7-decimal values summing to
10000000.

Example:
  $ cometd tx comet init-pool comet1ctrl... uusd,uxlm 5000000,5000000 1000000000,1000000000 30000 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			tokens := strings.Split(args[1], ",")
			weights, err := parseIntList(args[2], "weights")
			if err != nil {
				return err
			}
			balances, err := parseIntList(args[3], "balances")
			if err != nil {
				return err
			}
			swapFee, err := parseInt(args[4], "swap fee")
			if err != nil {
				return err
			}
			msg := types.NewMsgInitPool(clientCtx.GetFromAddress().String(), args[0], tokens, weights, balances, swapFee)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBind returns a CLI command handler for binding a token
func CmdBind() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind [pool-id] [token] [balance] [denorm]",
		Short: "Bind a token to a pool in setup",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			balance, err := parseInt(args[2], "balance")
			if err != nil {
				return err
			}
			denorm, err := parseInt(args[3], "denorm")
			if err != nil {
				return err
			}
			msg := types.NewMsgBind(clientCtx.GetFromAddress().String(), poolID, args[1], balance, denorm)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRebind returns a CLI command handler for adjusting a bound token
func CmdRebind() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebind [pool-id] [token] [balance] [denorm]",
		Short: "Adjust the balance and weight of a bound token",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			balance, err := parseInt(args[2], "balance")
			if err != nil {
				return err
			}
			denorm, err := parseInt(args[3], "denorm")
			if err != nil {
				return err
			}
			msg := types.NewMsgRebind(clientCtx.GetFromAddress().String(), poolID, args[1], balance, denorm)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnbind returns a CLI command handler for removing a bound token
func CmdUnbind() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unbind [pool-id] [token]",
		Short: "Remove a token from a pool in setup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgUnbind(clientCtx.GetFromAddress().String(), poolID, args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFinalize returns a CLI command handler for finalizing a pool
func CmdFinalize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize [pool-id]",
		Short: "Lock the token set and open trading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgFinalize(clientCtx.GetFromAddress().String(), poolID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetSwapFee returns a CLI command handler for setting the swap fee
func CmdSetSwapFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-swap-fee [pool-id] [fee]",
		Short: "Set the swap fee of a pool in setup (7-decimal fixed point)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			fee, err := parseInt(args[1], "fee")
			if err != nil {
				return err
			}
			msg := types.NewMsgSetSwapFee(clientCtx.GetFromAddress().String(), poolID, fee)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetController returns a CLI command handler for changing the controller
func CmdSetController() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-controller [pool-id] [controller]",
		Short: "Hand pool administration to a new controller",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgSetController(clientCtx.GetFromAddress().String(), poolID, args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetPublicSwap returns a CLI command handler for toggling public swap
func CmdSetPublicSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-public-swap [pool-id] [true|false]",
		Short: "Toggle public swapping for a pool in setup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgSetPublicSwap(clientCtx.GetFromAddress().String(), poolID, value)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetFreezeStatus returns a CLI command handler for freezing a pool
func CmdSetFreezeStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-freeze-status [pool-id] [true|false]",
		Short: "Freeze or unfreeze a pool (frozen pools reject swaps, joins and deposits)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgSetFreezeStatus(clientCtx.GetFromAddress().String(), poolID, value)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdGulp returns a CLI command handler for reconciling a token balance
func CmdGulp() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gulp [pool-id] [token]",
		Short: "Sync a record to the pool's actual on-chain balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgGulp(clientCtx.GetFromAddress().String(), poolID, args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdJoinPool returns a CLI command handler for a proportional join
func CmdJoinPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join-pool [pool-id] [pool-amount-out] [max-amounts-in]",
		Short: "Deposit all pool tokens proportionally for an exact share amount",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			poolAmountOut, err := parseInt(args[1], "pool amount out")
			if err != nil {
				return err
			}
			maxAmountsIn, err := parseIntList(args[2], "max amounts in")
			if err != nil {
				return err
			}
			msg := types.NewMsgJoinPool(clientCtx.GetFromAddress().String(), poolID, poolAmountOut, maxAmountsIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExitPool returns a CLI command handler for a proportional exit
func CmdExitPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exit-pool [pool-id] [pool-amount-in] [min-amounts-out]",
		Short: "Burn an exact share amount and withdraw all pool tokens proportionally",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			poolAmountIn, err := parseInt(args[1], "pool amount in")
			if err != nil {
				return err
			}
			minAmountsOut, err := parseIntList(args[2], "min amounts out")
			if err != nil {
				return err
			}
			msg := types.NewMsgExitPool(clientCtx.GetFromAddress().String(), poolID, poolAmountIn, minAmountsOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactAmountIn returns a CLI command handler for an exact-in swap
func CmdSwapExactAmountIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-amount-in [pool-id] [token-in] [amount-in] [token-out] [min-amount-out] [max-price]",
		Short: "Trade an exact input amount for a computed output",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amountIn, err := parseInt(args[2], "amount in")
			if err != nil {
				return err
			}
			minAmountOut, err := parseInt(args[4], "min amount out")
			if err != nil {
				return err
			}
			maxPrice, err := parseInt(args[5], "max price")
			if err != nil {
				return err
			}
			msg := types.NewMsgSwapExactAmountIn(clientCtx.GetFromAddress().String(), poolID, args[1], amountIn, args[3], minAmountOut, maxPrice)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactAmountOut returns a CLI command handler for an exact-out swap
func CmdSwapExactAmountOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-amount-out [pool-id] [token-in] [max-amount-in] [token-out] [amount-out] [max-price]",
		Short: "Trade a computed input for an exact output amount",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			maxAmountIn, err := parseInt(args[2], "max amount in")
			if err != nil {
				return err
			}
			amountOut, err := parseInt(args[4], "amount out")
			if err != nil {
				return err
			}
			maxPrice, err := parseInt(args[5], "max price")
			if err != nil {
				return err
			}
			msg := types.NewMsgSwapExactAmountOut(clientCtx.GetFromAddress().String(), poolID, args[1], maxAmountIn, args[3], amountOut, maxPrice)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDepositGivenTokenIn returns a CLI command handler for a single-sided
// deposit with an exact token amount
func CmdDepositGivenTokenIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-token-in [pool-id] [token-in] [amount-in] [min-pool-amount-out]",
		Short: "Deposit an exact token amount for a computed share amount",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amountIn, err := parseInt(args[2], "amount in")
			if err != nil {
				return err
			}
			minPoolAmountOut, err := parseInt(args[3], "min pool amount out")
			if err != nil {
				return err
			}
			msg := types.NewMsgDepositGivenTokenIn(clientCtx.GetFromAddress().String(), poolID, args[1], amountIn, minPoolAmountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDepositGivenLpOut returns a CLI command handler for a single-sided
// deposit with an exact share amount
func CmdDepositGivenLpOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit-lp-out [pool-id] [token-in] [pool-amount-out] [max-amount-in]",
		Short: "Deposit a computed token amount for an exact share amount",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			poolAmountOut, err := parseInt(args[2], "pool amount out")
			if err != nil {
				return err
			}
			maxAmountIn, err := parseInt(args[3], "max amount in")
			if err != nil {
				return err
			}
			msg := types.NewMsgDepositGivenLpOut(clientCtx.GetFromAddress().String(), poolID, args[1], poolAmountOut, maxAmountIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawGivenLpIn returns a CLI command handler for a single-sided
// withdrawal burning an exact share amount
func CmdWithdrawGivenLpIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-lp-in [pool-id] [token-out] [pool-amount-in] [min-amount-out]",
		Short: "Burn an exact share amount for a computed token withdrawal",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			poolAmountIn, err := parseInt(args[2], "pool amount in")
			if err != nil {
				return err
			}
			minAmountOut, err := parseInt(args[3], "min amount out")
			if err != nil {
				return err
			}
			msg := types.NewMsgWithdrawGivenLpIn(clientCtx.GetFromAddress().String(), poolID, args[1], poolAmountIn, minAmountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawGivenTokenOut returns a CLI command handler for a single-sided
// withdrawal of an exact token amount
func CmdWithdrawGivenTokenOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-token-out [pool-id] [token-out] [amount-out] [max-pool-amount-in]",
		Short: "Withdraw an exact token amount for a computed share burn",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amountOut, err := parseInt(args[2], "amount out")
			if err != nil {
				return err
			}
			maxPoolAmountIn, err := parseInt(args[3], "max pool amount in")
			if err != nil {
				return err
			}
			msg := types.NewMsgWithdrawGivenTokenOut(clientCtx.GetFromAddress().String(), poolID, args[1], amountOut, maxPoolAmountIn)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransferShares returns a CLI command handler for a share transfer
func CmdTransferShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-shares [pool-id] [to] [amount]",
		Short: "Transfer pool shares to another address",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amount, err := parseInt(args[2], "amount")
			if err != nil {
				return err
			}
			msg := types.NewMsgTransferShares(clientCtx.GetFromAddress().String(), poolID, args[1], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransferSharesFrom returns a CLI command handler for an allowance-based
// share transfer
func CmdTransferSharesFrom() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-shares-from [pool-id] [from] [to] [amount]",
		Short: "Transfer pool shares using a previously granted allowance",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amount, err := parseInt(args[3], "amount")
			if err != nil {
				return err
			}
			msg := types.NewMsgTransferSharesFrom(clientCtx.GetFromAddress().String(), poolID, args[1], args[2], amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApproveShares returns a CLI command handler for granting a share
// allowance
func CmdApproveShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-shares [pool-id] [spender] [amount] [expiration-ledger]",
		Short: "Grant a spender an allowance over your pool shares",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			amount, err := parseInt(args[2], "amount")
			if err != nil {
				return err
			}
			expiration, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expiration ledger: %s", args[3])
			}
			msg := types.NewMsgApproveShares(clientCtx.GetFromAddress().String(), poolID, args[1], amount, expiration)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
