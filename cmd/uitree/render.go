package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/uitree/internal/component"
	"github.com/atlanticdynamic/uitree/internal/fancy"
	"github.com/atlanticdynamic/uitree/internal/fixture"
	"github.com/atlanticdynamic/uitree/internal/prettyprint"
	"github.com/urfave/cli/v3"
)

func newFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the fixture file (.toml, .yaml, .yml or .json)",
	}
}

func newRenderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Aliases:   []string{"tree"},
		Usage:     "Print the component tree described by a fixture file",
		ArgsUsage: "[fixture file]",
		Flags: []cli.Flag{
			newFileFlag(),
			&cli.BoolFlag{
				Name:    "ascii",
				Aliases: []string{"a"},
				Usage:   "Draw branches with ASCII characters instead of box-drawing characters",
				Sources: cli.EnvVars("UITREE_ASCII"),
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Colorize glyphs and labels for the terminal",
			},
			&cli.BoolFlag{
				Name:  "rounded",
				Usage: "Draw with rounded lipgloss branches; the root has no branch glyph",
			},
		},
		Suggest: true,
		Action:  renderAction,
	}
}

// fixturePath returns the --file flag or the first positional argument
func fixturePath(cmd *cli.Command) (string, error) {
	if path := cmd.String("file"); path != "" {
		return path, nil
	}
	if cmd.Args().Len() < 1 {
		return "", fmt.Errorf(
			"fixture file path required (use the --file flag, or provide the fixture file as positional argument)",
		)
	}
	return cmd.Args().Get(0), nil
}

func loadFixture(cmd *cli.Command) (component.Component, error) {
	path, err := fixturePath(cmd)
	if err != nil {
		return nil, err
	}

	root, err := fixture.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture: %w", err)
	}
	slog.Debug("Fixture loaded", "path", path)
	return root, nil
}

func renderAction(_ context.Context, cmd *cli.Command) error {
	root, err := loadFixture(cmd)
	if err != nil {
		return err
	}

	prettyprint.SetUseASCII(cmd.Bool("ascii"))
	out := renderTree(root, cmd.Bool("color"), cmd.Bool("rounded"))
	_, err = io.WriteString(cmd.Root().Writer, out)
	return err
}

func renderTree(root component.Component, color, rounded bool) string {
	if !color && !rounded {
		return prettyprint.ToPrettyTree(root)
	}

	tree := prettyprint.NewTree(root)
	slog.Debug("Rendering decorated tree", "nodes", tree.Size(), "rounded", rounded)
	if rounded {
		return fancy.ComponentTree(tree).String() + "\n"
	}
	return fancy.Printer(prettyprint.DefaultGlyphs()).Render(tree)
}
