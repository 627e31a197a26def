package main

import (
	"context"

	"github.com/atlanticdynamic/uitree/internal/logging"
	"github.com/urfave/cli/v3"
)

var closeLog func() error

// setupLogging configures the default logger from the global flags
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	_, closeFn, err := logging.Setup(logging.Config{
		Level:  cmd.String("log-level"),
		Format: logging.Format(cmd.String("log-format")),
		Output: cmd.String("log-output"),
	})
	if err != nil {
		return ctx, err
	}
	closeLog = closeFn
	return ctx, nil
}

func closeLogging(_ context.Context, _ *cli.Command) error {
	if closeLog == nil {
		return nil
	}
	err := closeLog()
	closeLog = nil
	return err
}
