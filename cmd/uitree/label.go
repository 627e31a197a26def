package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/uitree/internal/component"
	"github.com/atlanticdynamic/uitree/internal/prettyprint"
	"github.com/urfave/cli/v3"
)

func newLabelCmd() *cli.Command {
	return &cli.Command{
		Name:      "label",
		Usage:     "Print the single-line label of one component",
		ArgsUsage: "[fixture file]",
		Flags: []cli.Flag{
			newFileFlag(),
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Slash separated child indexes from the root, e.g. 0/2/1",
			},
		},
		Action: labelAction,
	}
}

func labelAction(_ context.Context, cmd *cli.Command) error {
	root, err := loadFixture(cmd)
	if err != nil {
		return err
	}

	indexes, err := component.ParsePath(cmd.String("path"))
	if err != nil {
		return err
	}
	node, err := component.Descendant(root, indexes)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, prettyprint.ToPrettyString(node))
	return err
}
