package runtime

import (
	"fmt"
	"io"

	"github.com/bfkit/bfrt/bundle"
	"github.com/bfkit/bfrt/compiler"
	"github.com/bfkit/bfrt/machine"
	"github.com/bfkit/bfrt/program"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate counterfeiter -o fakes/loader.go --fake-name Loader . Loader
type Loader interface {
	Load(logger *logrus.Entry, path string, defaults bundle.Defaults) (*bundle.Program, error)
}

//go:generate counterfeiter -o fakes/machine_factory.go --fake-name MachineFactory . MachineFactory
type MachineFactory interface {
	NewMachine(logger *logrus.Entry, allocator machine.Allocator, config machine.Config) Machine
}

//go:generate counterfeiter -o fakes/machine.go --fake-name Machine . Machine
type Machine interface {
	Run(insns []program.Instruction, in io.Reader, out io.Writer) (int, error)
}

//go:generate counterfeiter -o fakes/emitter.go --fake-name Emitter . Emitter
type Emitter interface {
	Emit(out io.Writer, insns []program.Instruction, config compiler.Config) error
}

type IO struct {
	In  io.Reader
	Out io.Writer
}

type Runtime struct {
	loader         Loader
	machineFactory MachineFactory
	emitter        Emitter
	allocator      machine.Allocator
	defaults       bundle.Defaults
}

func New(l Loader, f MachineFactory, e Emitter, a machine.Allocator, defaults bundle.Defaults) *Runtime {
	return &Runtime{
		loader:         l,
		machineFactory: f,
		emitter:        e,
		allocator:      a,
		defaults:       defaults,
	}
}

// Run loads, parses and executes the program at path. The returned int
// is the program's result: the value of the current cell when the last
// instruction has run.
func (r *Runtime) Run(path string, rio IO) (int, error) {
	logger := logrus.WithFields(logrus.Fields{
		"path": path,
	})
	logger.Debug("running program")

	prog, insns, err := r.load(logger, path)
	if err != nil {
		return -1, err
	}

	m := r.machineFactory.NewMachine(logger, r.allocator, machine.Config{
		TapeSize: prog.TapeSize,
		Overflow: prog.Overflow,
	})

	return m.Run(insns, rio.In, rio.Out)
}

// Check loads and parses every path, collecting all failures instead of
// stopping at the first one.
func (r *Runtime) Check(paths ...string) error {
	g := &errgroup.Group{}
	checkErrs := make([]error, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			logger := logrus.WithFields(logrus.Fields{
				"path": path,
			})
			logger.Debug("checking program")

			if _, _, err := r.load(logger, path); err != nil {
				checkErrs[i] = errors.Wrap(err, path)
			}
			return nil
		})
	}
	_ = g.Wait()

	var result *multierror.Error
	for _, err := range checkErrs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Compile loads the program at path and writes its C translation to out.
func (r *Runtime) Compile(path string, out io.Writer, emitMain bool) error {
	logger := logrus.WithFields(logrus.Fields{
		"path":     path,
		"emitMain": emitMain,
	})
	logger.Debug("compiling program")

	prog, insns, err := r.load(logger, path)
	if err != nil {
		return err
	}

	return r.emitter.Emit(out, insns, compiler.Config{
		TapeSize: prog.TapeSize,
		Overflow: prog.Overflow,
		EmitMain: emitMain,
	})
}

// Dump writes the program's instruction list to out, one per line.
func (r *Runtime) Dump(path string, out io.Writer) error {
	logger := logrus.WithFields(logrus.Fields{
		"path": path,
	})
	logger.Debug("dumping program")

	_, insns, err := r.load(logger, path)
	if err != nil {
		return err
	}

	for _, insn := range insns {
		if _, err := fmt.Fprintln(out, insn); err != nil {
			return errors.Wrap(err, "writing instructions")
		}
	}
	return nil
}

func (r *Runtime) load(logger *logrus.Entry, path string) (*bundle.Program, []program.Instruction, error) {
	prog, err := r.loader.Load(logger, path, r.defaults)
	if err != nil {
		return nil, nil, err
	}

	insns, err := program.Parse(prog.Source)
	if err != nil {
		return nil, nil, err
	}

	if prog.Optimize {
		insns = program.Optimize(insns)
	}

	return prog, insns, nil
}
