// Package vm implements the hyeong virtual machine: the single-instruction
// executor that gives the language its observable behaviour (stack
// arithmetic, the numbered-stack stdin/stdout/stderr convention, and the
// area-tree jump/return mechanism).
package vm

import (
	"bufio"
	"io"
	"io/ioutil"

	"github.com/hyeong-run/hyeong/internal/flushio"
	"github.com/hyeong-run/hyeong/internal/state"
)

// VM executes instructions against a state.State, reading stdin-stack
// refills from in and writing stdout/stderr-stack pushes to out/err.
type VM struct {
	in  *bufio.Reader
	out flushio.WriteFlusher
	err flushio.WriteFlusher

	logfn func(mess string, args ...interface{})

	State *state.State
}

// New builds a VM from opts, defaulting to an empty reader, discarded
// output, and a fresh state.New() store.
func New(opts ...Option) *VM {
	vm := &VM{
		in:    bufio.NewReader(iotaEmptyReader{}),
		out:   flushio.NewWriteFlusher(ioutil.Discard),
		err:   flushio.NewWriteFlusher(ioutil.Discard),
		State: state.New(),
	}
	Options(opts...).apply(vm)
	return vm
}

type iotaEmptyReader struct{}

func (iotaEmptyReader) Read([]byte) (int, error) { return 0, io.EOF }

// Option configures a VM at construction time.
type Option interface{ apply(vm *VM) }

// WithInput sets the stream stack 0 refills from on an empty pop.
func WithInput(r io.Reader) Option { return inputOption{r} }

// WithOutput sets the stream stack 1 writes to.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithErrorOutput sets the stream stack 2 writes to.
func WithErrorOutput(w io.Writer) Option { return errorOutputOption{w} }

// WithState replaces the VM's state store, e.g. with state.NewDense after
// L1 stack renumbering.
func WithState(s *state.State) Option { return stateOption{s} }

// WithLogf installs a leveled trace function, called once per executed
// instruction.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfOption(logfn) }

// Options folds a slice of Option into one, flattening nested Options so
// that e.g. profile helpers can return a bundle the caller passes through
// unchanged.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*VM) {}

type options []Option

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type errorOutputOption struct{ io.Writer }
type stateOption struct{ s *state.State }
type logfOption func(mess string, args ...interface{})

func (o inputOption) apply(vm *VM)       { vm.in = bufio.NewReader(o.Reader) }
func (o outputOption) apply(vm *VM)      { vm.out = flushio.NewWriteFlusher(o.Writer) }
func (o errorOutputOption) apply(vm *VM) { vm.err = flushio.NewWriteFlusher(o.Writer) }
func (o stateOption) apply(vm *VM)       { vm.State = o.s }
func (o logfOption) apply(vm *VM)        { vm.logfn = o }

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

// Flush flushes both the stdout and stderr stack streams.
func (vm *VM) Flush() error {
	if err := vm.out.Flush(); err != nil {
		return err
	}
	return vm.err.Flush()
}
