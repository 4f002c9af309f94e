package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/Punkwe1ght/modsync/cmd/modsync"
	"github.com/Punkwe1ght/modsync/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := modsync.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Command failed")
		fmt.Fprintln(os.Stderr, pterm.Red(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
