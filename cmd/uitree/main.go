package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "uitree",
		Version: Version,
		Usage:   "Print UI component hierarchies as indented text trees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("UITREE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-output",
				Usage: "Log destination (stderr, stdout, file:///path or a file path)",
				Value: "stderr",
			},
		},
		Before: setupLogging,
		After:  closeLogging,
		Commands: []*cli.Command{
			newRenderCmd(),
			newLabelCmd(),
			newVersionCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
