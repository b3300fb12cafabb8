package program

import "fmt"

type UnmatchedEndLoopError struct {
	Position int
}

func (e *UnmatchedEndLoopError) Error() string {
	return fmt.Sprintf("unmatched ']' at offset %d", e.Position)
}

type UnclosedLoopError struct {
	Position int
}

func (e *UnclosedLoopError) Error() string {
	return fmt.Sprintf("unclosed '[' at offset %d", e.Position)
}
