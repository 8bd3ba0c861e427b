package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/state"
	"github.com/hyeong-run/hyeong/internal/vm"
)

// runREPL implements the bare (no-subcommand) mode: per-line parse and
// execute against one persistent, unoptimised state.State, the simplest
// possible hyeong toplevel.
func runREPL(verbose bool) error {
	opts := []vm.Option{
		vm.WithInput(os.Stdin),
		vm.WithOutput(os.Stdout),
		vm.WithErrorOutput(os.Stderr),
	}
	if verbose {
		opts = append(opts, vm.WithLogf(log.Leveledf("TRACE")))
	}
	m := vm.New(opts...)

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("hyeong REPL -- type `help` for commands")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case "":
			continue
		case "help":
			fmt.Println("commands: clear, help, exit; anything else is parsed as hyeong source")
			continue
		case "exit", "quit":
			return nil
		case "clear":
			m.State = state.New()
			continue
		}

		if err := m.Run(lang.Parse(line)); err != nil {
			if ee, ok := err.(*vm.ExitError); ok {
				os.Exit(ee.Code)
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
