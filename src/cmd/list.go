package cmd

import (
	"fmt"

	"algodemo/src/list"
	"github.com/urfave/cli/v2"
)

func CmdList() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Action:    listDemo,
		Category:  "ALGO",
		Usage:     "insert into and remove from a shared linked list",
		ArgsUsage: "[VALUE...]",
		Description: `
Builds a list from the values (A B C by default), inserts a value after the
head, removes it again and shows that a node changed through one holder is
seen through every other holder.

Examples:
$ algodemo list -i X A B C`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "insert",
				Aliases: []string{"i"},
				Value:   "X",
				Usage:   "value inserted after the head",
			},
		},
	}
}

func listDemo(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	values := ctx.Args().Slice()
	if len(values) == 0 {
		values = []string{"A", "B", "C"}
	}
	w := ctx.App.Writer

	head := list.FromValues(values...)
	fmt.Fprintf(w, "list:     %v\n", head)

	inserted := list.InsertAfter(head, ctx.String("insert"))
	fmt.Fprintf(w, "inserted: %v\n", head)

	if _, ok := list.RemoveAfter(head); !ok {
		logger.Warnf("nothing after %v to remove", head.Value())
	}
	fmt.Fprintf(w, "removed:  %v\n", head)

	// inserted is still held here after the list let go of it.
	inserted.SetValue(inserted.Value() + "'")
	fmt.Fprintf(w, "detached: %v\n", inserted)

	if second := head.Next(); second != nil {
		alias := head.Next()
		alias.SetValue(alias.Value() + "*")
		fmt.Fprintf(w, "aliased:  %v (%v through another holder)\n", head, second.Value())
	}
	return nil
}
