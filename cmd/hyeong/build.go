package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hyeong-run/hyeong/internal/emit"
	"github.com/hyeong-run/hyeong/internal/optimize"
	"golang.org/x/sync/errgroup"
)

// buildDir is the fixed build-temp package, relative to the module root,
// that emitted source is written into. It has to live inside this
// module's own source tree, not some arbitrary scratch directory, because
// the generated program imports this module's internal/area,
// internal/rational, and internal/vm packages.
const buildDir = "hyeongbuild"

// runBuild implements the `build` subcommand: emit standalone Go source
// for the (optimised) program and, unless -compile=false, shell out to
// `go build` on it, exactly the external-collaborator step the resource
// model permits.
func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	level := fs.Int("O", 2, "optimisation level")
	out := fs.String("o", "a.out", "compiled binary output path")
	compile := fs.Bool("compile", true, "invoke `go build` on the emitted source")
	timeout := fs.Duration("timeout", 30*time.Second, "abort the gofmt/go build pipeline after this long")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("build: expected exactly one source file")
	}

	code, err := parseFile(fs.Arg(0))
	if err != nil {
		return err
	}

	st, residual, err := optimize.Optimize(code, *level)
	if err != nil {
		return err
	}

	src, err := emit.Emit(st, residual)
	if err != nil {
		return err
	}

	root, err := moduleRoot()
	if err != nil {
		return err
	}
	dir := filepath.Join(root, buildDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	srcPath := filepath.Join(dir, "main.go")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := writeFormatted(ctx, srcPath, src); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", srcPath)

	if !*compile {
		return nil
	}

	cmd := exec.CommandContext(ctx, "go", "build", "-o", *out, "./"+buildDir)
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", *out)
	return nil
}

// writeFormatted pipes src through gofmt before writing it to path,
// fanning the gofmt subprocess and the pipe-feeding goroutine out under a
// shared errgroup.WithContext, the same concurrent pipe shape the
// teacher's scripts/gen_vm_expects.go uses to post-process its generated
// source through goimports rather than writing raw, unformatted text.
func writeFormatted(ctx context.Context, path, src string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gofmt := exec.CommandContext(ctx, "gofmt")
	stdin, err := gofmt.StdinPipe()
	if err != nil {
		return err
	}
	gofmt.Stdout = f
	gofmt.Stderr = os.Stderr

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer stdin.Close()
		_, err := io.WriteString(stdin, src)
		return err
	})
	eg.Go(gofmt.Run)
	return eg.Wait()
}
