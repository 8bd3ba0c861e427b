package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hyeong-run/hyeong/internal/optimize"
	"github.com/hyeong-run/hyeong/internal/vm"
)

// runRun implements the `run` subcommand: parse, optimise at -O, and
// execute to completion against stdio, honouring -timeout the same way
// the teacher's main.go wires context.WithTimeout around vm.Run.
func runRun(verbose bool, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	level := fs.Int("O", 2, "optimisation level: 0, 1, or 2")
	timeout := fs.Duration("timeout", 0, "abort after this long (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run: expected exactly one source file")
	}

	code, err := parseFile(fs.Arg(0))
	if err != nil {
		return err
	}

	st, residual, err := optimize.Optimize(code, *level)
	if err != nil {
		return err
	}

	opts := []vm.Option{
		vm.WithState(st),
		vm.WithInput(os.Stdin),
		vm.WithOutput(os.Stdout),
		vm.WithErrorOutput(os.Stderr),
	}
	if verbose {
		opts = append(opts, vm.WithLogf(log.Leveledf("TRACE")))
	}
	m := vm.New(opts...)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- m.Run(residual) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case runErr := <-errCh:
		return exitOrReturn(runErr)
	}
}

// exitOrReturn turns an *vm.ExitError into a direct os.Exit, the CLI
// driver's job per the exit-signal taxonomy; any other error is returned
// for the caller's logger to report.
func exitOrReturn(err error) error {
	if ee, ok := err.(*vm.ExitError); ok {
		os.Exit(ee.Code)
	}
	return err
}
