// SPDX-License-Identifier: MIT

// Command avgdist prints integer sequences in [min, max] whose mean equals
// a decimal average exactly, one per algorithm.
//
//	avgdist -average 4.3 -min 1 -max 5 -print
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/avgdist/internal/cli"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	cfg, err := cli.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	result, execErr := cli.Execute(ctx, inv, cfg, os.Stdout, os.Stderr)
	stop()
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}
	os.Exit(result.ExitCode)
}
