package runtime

import (
	"github.com/bfkit/bfrt/bundle"
	"github.com/bfkit/bfrt/compiler"
	"github.com/bfkit/bfrt/machine"
	"github.com/sirupsen/logrus"
)

type machineFactory struct{}

func (machineFactory) NewMachine(logger *logrus.Entry, allocator machine.Allocator, config machine.Config) Machine {
	return machine.New(logger, allocator, config)
}

// NewDefault wires a Runtime with the real loader, machine and emitter.
func NewDefault(logger *logrus.Entry, defaults bundle.Defaults) *Runtime {
	return New(
		bundle.Loader{},
		machineFactory{},
		compiler.New(logger),
		machine.HeapAllocator{},
		defaults,
	)
}
