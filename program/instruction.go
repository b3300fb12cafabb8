package program

import "fmt"

// Op identifies a machine operation. SetValue/SetPointer only appear
// after optimization; the parser emits the Add forms.
type Op int

const (
	SetValue Op = iota
	AddValue
	SetPointer
	AddPointer
	Input
	Output
	BeginLoop
	EndLoop
	DebugLog
)

type Instruction struct {
	Op  Op
	Arg int
}

func (i Instruction) String() string {
	switch i.Op {
	case SetValue:
		return fmt.Sprintf("SetValue(%d)", i.Arg)
	case AddValue:
		return fmt.Sprintf("AddValue(%d)", i.Arg)
	case SetPointer:
		return fmt.Sprintf("SetPointer(%d)", i.Arg)
	case AddPointer:
		return fmt.Sprintf("AddPointer(%d)", i.Arg)
	case Input:
		return "Input"
	case Output:
		return "Output"
	case BeginLoop:
		return "BeginLoop"
	case EndLoop:
		return "EndLoop"
	case DebugLog:
		return "DebugLog"
	default:
		return fmt.Sprintf("Unknown(%d, %d)", int(i.Op), i.Arg)
	}
}
