package machine

import "fmt"

type TapeOverflowError struct {
	Index int
	Size  int
}

func (e *TapeOverflowError) Error() string {
	return fmt.Sprintf("tape index %d out of range for tape of size %d", e.Index, e.Size)
}

type UnbalancedProgramError struct{}

func (e *UnbalancedProgramError) Error() string {
	return "program has unbalanced loop instructions"
}
