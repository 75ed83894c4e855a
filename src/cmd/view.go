package cmd

import (
	"fmt"
	"strings"

	"algodemo/src/sort"
	"algodemo/src/utils"
	"github.com/urfave/cli/v2"
)

func CmdView() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Action:    view,
		Category:  "ALGO",
		Usage:     "displays the ranges a sort strategy recursed into",
		ArgsUsage: "[NUMBER...]",
		Description: `
It is used to display which ranges of the input a strategy worked on, and in
which order.

Examples:
$ algodemo view -a quick 0 9 8 7 6 5 4 3 2 1
$ algodemo view -a merge --list 2 8 1 0 5 3`,
		Flags: []cli.Flag{
			algorithmFlag(),
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Value:   true,
				Usage:   "display the ranges as a recursion tree",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "display the ranges in visiting order",
			},
		},
	}
}

func view(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	nums, err := parseNumbers(ctx.Args().Slice())
	if err != nil {
		return err
	}
	alg, err := sort.ParseAlgorithm(ctx.String("algorithm"))
	if err != nil {
		return err
	}

	input := fmt.Sprint(nums)
	steps, err := sort.Trace(alg, nums)
	if err != nil {
		return err
	}
	logger.Debugf("%s visited %d ranges of %s", alg, len(steps), input)

	w := ctx.App.Writer
	if ctx.Bool("list") {
		for _, st := range steps {
			fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", st.Depth), st.Range)
		}
	} else if ctx.Bool("tree") {
		if root := utils.BuildTree(steps, sort.Range.String); root != nil {
			root.ShowTree(w, "")
		}
	}
	fmt.Fprintf(w, "%s -> %v\n", input, nums)
	return nil
}
