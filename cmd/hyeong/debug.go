package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hyeong-run/hyeong/internal/optimize"
	"github.com/hyeong-run/hyeong/internal/state"
	"github.com/hyeong-run/hyeong/internal/vm"
)

// runDebug implements the `debug` subcommand: a single-step REPL over a
// parsed and optimised program, grounded on KTStephano-GVM's
// execProgramDebugMode breakpoint loop (a line->struct{} set, checked
// against the current location on every step while in "run" mode),
// adapted onto this module's own Dumper instead of bare fmt.Println and
// onto state.State.Clone for "previous" (no return-stack memory model to
// rewind, so the REPL keeps its own history of cloned states instead).
func runDebug(verbose bool, args []string) error {
	fs := flag.NewFlagSet("debug", flag.ExitOnError)
	level := fs.Int("O", 1, "optimisation level to debug against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("debug: expected exactly one source file")
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
	if err := m.Drain(); err != nil {
		return err
	}

	start := m.State.CodeLen()
	for _, instr := range residual {
		m.State.PushCode(instr)
	}
	m.State.SetLoc(start)

	breaks := map[int]struct{}{}
	var history []*state.State

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("commands: next, previous, break N, run, state, help, exit")

	running := false
	for {
		if !running {
			fmt.Print("(debug) ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			switch fields[0] {
			case "next", "n":
				if err := debugStep(m, &history); err != nil {
					if done, rerr := reportExit(err); done {
						return rerr
					}
				}
			case "previous", "p":
				if len(history) == 0 {
					fmt.Println("nothing to undo")
					continue
				}
				m.State = history[len(history)-1]
				history = history[:len(history)-1]
			case "break", "b":
				if len(fields) != 2 {
					fmt.Println("usage: break N")
					continue
				}
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					fmt.Println(err)
					continue
				}
				if _, ok := breaks[n]; ok {
					delete(breaks, n)
				} else {
					breaks[n] = struct{}{}
				}
			case "run", "r":
				running = true
			case "state", "s":
				vm.Dumper{VM: m, Out: os.Stdout}.Dump()
			case "help", "h":
				fmt.Println("commands: next, previous, break N, run, state, help, exit")
			case "exit", "quit", "q":
				return nil
			default:
				fmt.Printf("unknown command %q\n", fields[0])
			}
			continue
		}

		if m.State.Loc() >= m.State.CodeLen() {
			fmt.Println("program finished")
			running = false
			continue
		}
		if _, ok := breaks[m.State.Loc()]; ok {
			fmt.Printf("breakpoint at %d\n", m.State.Loc())
			running = false
			continue
		}
		if err := debugStep(m, &history); err != nil {
			if done, rerr := reportExit(err); done {
				return rerr
			}
			running = false
		}
	}
}

func debugStep(m *vm.VM, history *[]*state.State) error {
	*history = append(*history, m.State.Clone())
	next, err := m.ExecuteOne(m.State.Loc())
	if err != nil {
		return err
	}
	m.State.SetLoc(next)
	return nil
}

// reportExit prints a clean message for the process-exit signal and
// reports the REPL should stop; any other error is returned as-is for
// the caller to report through the usual error path.
func reportExit(err error) (stop bool, rerr error) {
	if ee, ok := err.(*vm.ExitError); ok {
		fmt.Printf("program exited with code %d\n", ee.Code)
		return true, nil
	}
	return true, err
}
