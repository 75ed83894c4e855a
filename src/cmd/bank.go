package cmd

import (
	"fmt"

	"algodemo/src/bank"
	"github.com/urfave/cli/v2"
)

func CmdBank() *cli.Command {
	return &cli.Command{
		Name:     "bank",
		Action:   bankDemo,
		Category: "TOOL",
		Usage:    "apply deposits and withdrawals to a balance that never goes negative",
		Description: `
Deposits first, then withdraws in order. A withdrawal larger than the balance
is refused and leaves the balance unchanged.

Examples:
$ algodemo bank --deposit 100 --withdraw 50 --withdraw 80`,
		Flags: []cli.Flag{
			&cli.Int64SliceFlag{
				Name:    "deposit",
				Aliases: []string{"d"},
				Usage:   "amount to deposit, repeatable",
			},
			&cli.Int64SliceFlag{
				Name:    "withdraw",
				Aliases: []string{"w"},
				Usage:   "amount to withdraw, repeatable",
			},
		},
	}
}

func bankDemo(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	w := ctx.App.Writer

	var account bank.Account
	for _, amount := range ctx.Int64Slice("deposit") {
		if err := account.Deposit(amount); err != nil {
			return err
		}
		fmt.Fprintf(w, "deposit %d: balance %d\n", amount, account.Balance())
	}
	for _, amount := range ctx.Int64Slice("withdraw") {
		ok, err := account.Withdraw(amount)
		if err != nil {
			return err
		}
		if !ok {
			logger.Warnf("withdraw %d refused, balance %d", amount, account.Balance())
			fmt.Fprintf(w, "withdraw %d: refused\n", amount)
			continue
		}
		fmt.Fprintf(w, "withdraw %d: balance %d\n", amount, account.Balance())
	}
	return nil
}
