// Package hello is the reference program for the generated code: a
// banner, one character, and the tape lifecycle (allocate, zero,
// release) with the fatal allocation check.
package hello

import (
	"fmt"
	"io"
)

const BufferSize = 1024

//go:generate counterfeiter -o fakes/allocator.go --fake-name Allocator . Allocator
type Allocator interface {
	Allocate(size int) ([]int32, error)
	Release(buffer []int32)
}

type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) ([]int32, error) {
	return make([]int32, size), nil
}

func (HeapAllocator) Release([]int32) {}

// Run writes the program's output to out and returns its exit status.
// Allocation failure is fatal: the fixed error line is written and the
// buffer is neither touched nor released.
func Run(out io.Writer, allocator Allocator) int {
	fmt.Fprintf(out, "Hello, World!\n")

	fmt.Fprintf(out, "%c\n", 'A')

	buffer, err := allocator.Allocate(BufferSize)
	if err != nil {
		fmt.Fprintf(out, "Error: Cannot allocate enough memory\n")
		return 1
	}

	for i := 0; i < len(buffer); i++ {
		buffer[i] = 0
	}

	allocator.Release(buffer)
	return 0
}
