package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/orderkit/internal/demo"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "orderkit"))

	var c demo.Config
	if err := env.Load(&c); err != nil {
		logger.Fatal(ctx, "failed to load orderkit config", logging.ErrField(err))
		os.Exit(cli.ExitCodeBadRequest)
	}

	cli.Main(ctx, demo.Command{
		DefaultOrder: c.Order,
		Logger:       &logging.Logger{Out: os.Stderr, Level: c.Level()},
	})
}
