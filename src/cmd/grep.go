package cmd

import (
	"algodemo/src/grep"
	"github.com/urfave/cli/v2"
)

func CmdGrep() *cli.Command {
	return &cli.Command{
		Name:      "grep",
		Action:    search,
		Category:  "TOOL",
		Usage:     "print the lines of a file that contain a query",
		ArgsUsage: "QUERY FILE [IGNORE_CASE]",
		Description: `
Prints every line of FILE containing QUERY. Case is ignored with -i, when the
environment variable IGNORE_CASE is 1, or when the third argument is 1.

Examples:
$ algodemo grep to poem.txt
$ IGNORE_CASE=1 algodemo grep rUsT poem.txt`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ignore-case",
				Aliases: []string{"i"},
				Usage:   "match case-insensitively",
			},
		},
	}
}

func search(ctx *cli.Context) error {
	if err := setup(ctx, 2); err != nil {
		return err
	}
	conf, err := grep.NewConfig(ctx.Args().Slice())
	if err != nil {
		return err
	}
	if ctx.Bool("ignore-case") {
		conf.IgnoreCase = true
	}
	logger.Debugf("search %q in %s (ignore case: %t)", conf.Query, conf.FilePath, conf.IgnoreCase)
	return grep.Run(conf, ctx.App.Writer)
}
