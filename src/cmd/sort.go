package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"algodemo/src/generic"
	"algodemo/src/sort"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var sampleNumbers = []int{8, 2, 1, 0, 9, 3, 8, 0, 1, 2, 8, 3}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortNumbers,
		Category:  "ALGO",
		Usage:     "sort integers with one of the sort strategies",
		ArgsUsage: "[NUMBER...]",
		Description: `
Sorts the given integers in ascending order. Without arguments a built-in
sample sequence is used.

Examples:
$ algodemo sort -a merge 2 8 1 0 5 3
# Compare every strategy on the sample sequence
$ algodemo sort --all`,
		Flags: []cli.Flag{
			algorithmFlag(),
			&cli.BoolFlag{
				Name:  "all",
				Usage: "run every strategy on the same input",
			},
		},
	}
}

func algorithmFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Value:   string(sort.AlgoBubble),
		Usage:   fmt.Sprintf("sort strategy, one of %v", sort.Algorithms()),
	}
}

func sortNumbers(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	nums, err := parseNumbers(ctx.Args().Slice())
	if err != nil {
		return err
	}

	algs := sort.Algorithms()
	if !ctx.Bool("all") {
		alg, err := sort.ParseAlgorithm(ctx.String("algorithm"))
		if err != nil {
			return err
		}
		algs = []sort.Algorithm{alg}
	}

	if largest, ok := generic.Largest(nums); ok {
		logger.Debugf("sorting %d numbers, largest %d", len(nums), largest)
	}
	for _, alg := range algs {
		s := slices.Clone(nums)
		start := time.Now()
		if err := sort.SortWith(alg, s); err != nil {
			return err
		}
		logger.Debugf("%s sorted %d numbers in %s", alg, len(s), time.Since(start))
		fmt.Fprintf(ctx.App.Writer, "%s: %v\n", alg, s)
	}
	return nil
}

func parseNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return slices.Clone(sampleNumbers), nil
	}
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", arg)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
