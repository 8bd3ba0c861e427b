// Command gen_scenarios regenerates the golden fixtures for the S1-S6
// end-to-end scenarios this module's tests assert against, running each
// one against the real VM concurrently under a shared context, and
// formatting the generated Go source with go/format before writing it out.
// Adapted from the teacher's scripts/gen_vm_expects.go: the same
// errgroup.WithContext shape (go/format in place of its goimports/gofmt
// pipe), retargeted from
// regenerating FORTH "expect" method wrappers from test source to
// regenerating hyeong's literal stdin/stdout/stderr scenario table.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hyeong-run/hyeong/internal/lang"
	"github.com/hyeong-run/hyeong/internal/vm"
	"golang.org/x/sync/errgroup"
)

// scenario is one literal S1-S6 case: a source program, the stdin it is
// fed, and the stdout/stderr it must produce.
type scenario struct {
	name   string
	source string
	stdin  string
	stdout string
	stderr string
}

var scenarios = []scenario{
	{
		name:   "S1",
		source: "혀어어어어어어엉......핫.",
		stdout: "0",
	},
	{
		name: "S2",
		source: "혀어어어어어어어엉........ 핫. 혀엉..... 흑... 하앗... 흐윽... 형.  하앙.혀엉.... " +
			"하앙... 흐윽... 항. 항. 형... 하앙. 흐으윽... 형... 흡... 혀엉..하아아앗. 혀엉.. 흡... " +
			"흐읍... 형.. 하앗. 하아앙... 형... 하앙... 흐윽...혀어어엉.. 하앙. 항. 형... 하앙. 혀엉.... " +
			"하앙. 흑... 항. 형... 흡  하앗.",
		stdout: "Hello, world!",
	},
	{
		name:   "S3",
		source: "혀어어어어어어엉......핫.. 혀어어어어어어어엉........ 핫. 혀어어어어어어어엉......... 핫..",
		stdout: "H",
		stderr: "0Q",
	},
	{
		name:   "S4",
		source: "형 흣........💕 흣.... 형. 하앙... 흣. 흑... 흐읏....!💕",
		stdout: "12345678",
	},
	{
		name:   "S5",
		source: "형. 형.. 형. 흑...💘 항.... 하앙... 항...♡ 흑...💘 ! 흣...흑.",
		stdout: "4",
	},
	{
		name:   "S6a",
		source: "형. 흣... 흑 항.",
		stdout: "1",
	},
	{
		name:   "S6b",
		source: "형. 흣... 흑 핫.",
		stdout: "1",
	},
	{
		name:   "S6c",
		source: "형. 흑 흣.",
		stdout: "1",
	},
}

func main() {
	outDir := flag.String("out", "scripts/testdata", "directory to write scenarios.go into")
	timeout := flag.Duration("timeout", 5*time.Second, "abort generation after this long")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *outDir); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, outDir string) error {
	eg, ctx := errgroup.WithContext(ctx)

	results := make([]string, len(scenarios))
	for i, sc := range scenarios {
		i, sc := i, sc
		eg.Go(func() error {
			stdout, stderr, err := execute(sc.source, sc.stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", sc.name, err)
			}
			if stdout != sc.stdout || stderr != sc.stderr {
				return fmt.Errorf("%s: got stdout=%q stderr=%q, want stdout=%q stderr=%q",
					sc.name, stdout, stderr, sc.stdout, sc.stderr)
			}
			results[i] = stdout
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return writeTable(outDir, results)
}

// execute runs source against a fresh, unoptimised VM, the plain
// reference semantics every optimisation level must agree with.
func execute(source, stdin string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	m := vm.New(
		vm.WithInput(strings.NewReader(stdin)),
		vm.WithOutput(&out),
		vm.WithErrorOutput(&errOut),
	)
	err = m.Run(lang.Parse(source))
	return out.String(), errOut.String(), err
}

// writeTable renders the confirmed scenario table as generated Go source,
// gofmt'd via go/format (no external process needed, unlike the teacher's
// goimports subprocess pipe, since this table has no import list to
// resolve) and writes it to outDir/scenarios.go.
func writeTable(outDir string, results []string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by scripts/gen_scenarios.go. DO NOT EDIT.\n")
	buf.WriteString("package testdata\n\n")
	buf.WriteString("// Scenario names one confirmed S1-S6 literal case, keyed by name, already\n")
	buf.WriteString("// checked against its expected stdout/stderr.\n")
	buf.WriteString("type Scenario struct {\n\tName, Source, Stdin, Stdout, Stderr string\n}\n\n")
	buf.WriteString("var Scenarios = []Scenario{\n")
	for i, sc := range scenarios {
		fmt.Fprintf(&buf, "\t{Name: %s, Source: %s, Stdin: %s, Stdout: %s, Stderr: %s},\n",
			strconv.Quote(sc.name), strconv.Quote(sc.source), strconv.Quote(sc.stdin),
			strconv.Quote(results[i]), strconv.Quote(sc.stderr))
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(outDir+"/scenarios.go", formatted, 0o644)
}

