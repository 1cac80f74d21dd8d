package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/pluginregistrant/internal/app"
	"github.com/specialistvlad/pluginregistrant/internal/cli"
)

// exitDrift is the exit code for a -check run that found a stale registrant.
const exitDrift = 3

// main is the entrypoint for the registrantgen binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	generator := app.NewApp(logW, cfg)
	if err := generator.Run(context.Background()); err != nil {
		if errors.Is(err, app.ErrDrift) {
			return &cli.ExitError{Code: exitDrift, Message: err.Error()}
		}
		return err
	}
	return nil
}
