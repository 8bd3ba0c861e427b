package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hyeong-run/hyeong/internal/optimize"
)

// runCheck implements the `check` subcommand: parse and optimise without
// touching real stdio (optimize's L2 pre-execution only ever writes into
// in-memory buffers, so running the full pipeline here has no observable
// side effects), then report what would run.
func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	level := fs.Int("O", 2, "optimisation level to dry-run")
	raw := fs.Bool("raw", false, "print each recorded instruction's raw source span")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("check: expected exactly one source file")
	}

	code, err := parseFile(fs.Arg(0))
	if err != nil {
		return err
	}

	_, residual, err := optimize.Optimize(code, *level)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ok: %d instructions parsed, %d residual after L%d\n", len(code), len(residual), *level)

	if *raw {
		for i, instr := range code {
			fmt.Fprintf(os.Stdout, "%d: %v %q (line %d, col %d)\n", i, instr.Type, instr.Span.Raw, instr.Span.Line, instr.Span.Column)
		}
	}
	return nil
}
