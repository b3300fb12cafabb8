package program

import "fmt"

// OverflowMode controls what happens when the pointer leaves the tape.
type OverflowMode int

const (
	// OverflowWrap reduces the pointer modulo the tape size.
	OverflowWrap OverflowMode = iota
	// OverflowAbort stops the program with a failure result.
	OverflowAbort
	// OverflowUndefined emits no check at all. Only the code generator
	// honors it; the machine falls back to OverflowAbort.
	OverflowUndefined
)

func (m OverflowMode) String() string {
	switch m {
	case OverflowWrap:
		return "wrap"
	case OverflowAbort:
		return "abort"
	case OverflowUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("overflowmode(%d)", int(m))
	}
}

func ParseOverflowMode(mode string) (OverflowMode, error) {
	switch mode {
	case "wrap":
		return OverflowWrap, nil
	case "abort":
		return OverflowAbort, nil
	case "undefined":
		return OverflowUndefined, nil
	default:
		return OverflowWrap, &UnknownOverflowModeError{Mode: mode}
	}
}

type UnknownOverflowModeError struct {
	Mode string
}

func (e *UnknownOverflowModeError) Error() string {
	return fmt.Sprintf("unknown memory overflow mode: %q (expected 'wrap', 'abort' or 'undefined')", e.Mode)
}
