package machine

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/bfkit/bfrt/program"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TapeSize int
	Overflow program.OverflowMode
}

//go:generate counterfeiter -o fakes/allocator.go --fake-name Allocator . Allocator
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Release(tape []byte)
}

// HeapAllocator hands out tapes from the Go heap. Release is a no-op;
// the runtime reclaims the tape once nothing references it.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (HeapAllocator) Release([]byte) {}

type Machine struct {
	logger    *logrus.Entry
	allocator Allocator
	config    Config
}

func New(logger *logrus.Entry, allocator Allocator, config Config) *Machine {
	return &Machine{
		logger:    logger,
		allocator: allocator,
		config:    config,
	}
}

// Run executes the program and returns the value of the current cell
// when the last instruction has run. The tape is requested from the
// allocator, zeroed before the first instruction and released exactly
// once, also when the run fails.
func (m *Machine) Run(insns []program.Instruction, in io.Reader, out io.Writer) (int, error) {
	jumps, err := matchLoops(insns)
	if err != nil {
		return -1, err
	}

	tape, err := m.allocator.Allocate(m.config.TapeSize)
	if err != nil {
		return -1, errors.Wrap(err, "allocating tape")
	}
	defer m.allocator.Release(tape)

	for i := range tape {
		tape[i] = 0
	}

	m.logger.WithFields(logrus.Fields{
		"instructions": len(insns),
		"tapeSize":     m.config.TapeSize,
		"overflow":     m.config.Overflow.String(),
	}).Debug("running program")

	if in == nil {
		in = bytes.NewReader(nil)
	}
	if out == nil {
		out = io.Discard
	}
	reader := bufio.NewReader(in)

	index := 0
	for pc := 0; pc < len(insns); pc++ {
		insn := insns[pc]

		switch insn.Op {

		case program.SetValue:
			tape[index] = byte(insn.Arg)

		case program.AddValue:
			tape[index] += byte(insn.Arg)

		case program.SetPointer:
			index, err = m.moveTo(insn.Arg)
			if err != nil {
				return -1, err
			}

		case program.AddPointer:
			index, err = m.moveTo(index + insn.Arg)
			if err != nil {
				return -1, err
			}

		case program.Input:
			c, err := reader.ReadByte()
			if err == io.EOF {
				// getchar reports end of input as -1; the cell
				// keeps the truncated value
				tape[index] = 0xff
			} else if err != nil {
				return -1, errors.Wrap(err, "reading input")
			} else {
				tape[index] = c
			}

		case program.Output:
			if _, err := out.Write([]byte{tape[index]}); err != nil {
				return -1, errors.Wrap(err, "writing output")
			}

		case program.BeginLoop:
			if tape[index] == 0 {
				pc = jumps[pc]
			}

		case program.EndLoop:
			pc = jumps[pc] - 1

		case program.DebugLog:
			if err := dumpState(out, pc, tape, index); err != nil {
				return -1, errors.Wrap(err, "writing debug dump")
			}
		}
	}

	return int(tape[index]), nil
}

func (m *Machine) moveTo(index int) (int, error) {
	size := m.config.TapeSize

	if m.config.Overflow == program.OverflowWrap {
		return ((index % size) + size) % size, nil
	}

	// abort; the machine has no undefined behavior to offer
	if index < 0 || index >= size {
		return 0, &TapeOverflowError{Index: index, Size: size}
	}
	return index, nil
}

// dumpState writes one line per dump: instruction index, pointer, then
// every cell as a raw byte separated by '|'.
func dumpState(out io.Writer, pc int, tape []byte, index int) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%05d %05d", pc, index)
	for _, c := range tape {
		buf.WriteByte(c)
		buf.WriteByte('|')
	}
	buf.WriteByte('\n')

	_, err := out.Write(buf.Bytes())
	return err
}

func matchLoops(insns []program.Instruction) ([]int, error) {
	jumps := make([]int, len(insns))

	var stack []int
	for i, insn := range insns {
		switch insn.Op {
		case program.BeginLoop:
			stack = append(stack, i)
		case program.EndLoop:
			if len(stack) == 0 {
				return nil, &UnbalancedProgramError{}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}

	if len(stack) != 0 {
		return nil, &UnbalancedProgramError{}
	}
	return jumps, nil
}
