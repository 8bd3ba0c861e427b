// Command hyeong is the toolchain front end: it runs, checks, compiles, and
// steps through hyeong programs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hyeong-run/hyeong/internal/logio"
)

var log logio.Logger

func main() {
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	color := flag.String("color", "auto", "ANSI colouring: never, auto, always")
	verbose := flag.Bool("verbose", false, "trace VM execution to stderr")
	flag.Usage = usage
	flag.Parse()

	wireColor(*color)

	args := flag.Args()
	if len(args) == 0 {
		log.ErrorIf(runREPL(*verbose))
		return
	}

	sub, rest := args[0], args[1:]
	var err error
	switch sub {
	case "run":
		err = runRun(*verbose, rest)
	case "check":
		err = runCheck(rest)
	case "build":
		err = runBuild(rest)
	case "debug":
		err = runDebug(*verbose, rest)
	default:
		err = fmt.Errorf("unknown subcommand %q (want run, check, build, or debug)", sub)
	}
	log.ErrorIf(err)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [global flags] [run|check|build|debug] [args...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "with no subcommand, starts an interactive REPL\n\n")
	flag.PrintDefaults()
}

// wireColor wraps the shared logger's output through runeio's ANSI-aware
// writer when colouring is requested, the way the teacher's main.go wires
// its -trace scan pipe through a similar Wrap call.
func wireColor(mode string) {
	switch mode {
	case "always":
		log.Wrap(newANSIWriter)
	case "auto":
		if isTerminal(os.Stderr) {
			log.Wrap(newANSIWriter)
		}
	case "never":
	default:
		log.Errorf("unknown -color mode %q, want never, auto, or always", mode)
	}
}
