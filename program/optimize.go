package program

// List accumulates instructions, folding adjacent operations as they are
// pushed. Cell arithmetic wraps modulo the cell size at execution time,
// so value sums may be folded without changing observable behavior.
type List struct {
	list             []Instruction
	loopCommentDepth int
}

// Optimize rewrites a parsed program into its folded form. The result
// never contains a loop whose body is statically unreachable.
func Optimize(input []Instruction) []Instruction {
	l := &List{}
	for _, insn := range input {
		l.Push(insn)
	}
	return l.Instructions()
}

func (l *List) Instructions() []Instruction {
	return l.list
}

func (l *List) Push(insn Instruction) {
	if l.loopCommentDepth != 0 {
		// inside a loop that can never be entered
		switch insn.Op {
		case BeginLoop:
			l.loopCommentDepth++
		case EndLoop:
			l.loopCommentDepth--
		}
		return
	}

	var last Instruction
	hasLast := len(l.list) != 0
	if hasLast {
		last = l.list[len(l.list)-1]
	}

	switch {

	// value += 0; => <empty>
	case insn.Op == AddValue && insn.Arg == 0:

	// value += a; value += b; => value += a + b;
	case hasLast && last.Op == AddValue && insn.Op == AddValue:
		l.pop()
		l.Push(Instruction{Op: AddValue, Arg: last.Arg + insn.Arg})

	// value = a; value += b; => value = a + b;
	case hasLast && last.Op == SetValue && insn.Op == AddValue:
		l.pop()
		l.Push(Instruction{Op: SetValue, Arg: last.Arg + insn.Arg})

	// value  = a; value = b; => value = b;
	// value += a; value = b; => value = b;
	case hasLast && (last.Op == SetValue || last.Op == AddValue) && insn.Op == SetValue:
		l.pop()
		l.Push(insn)

	// ptr += a; ptr += b; => ptr += a + b;
	case hasLast && last.Op == AddPointer && insn.Op == AddPointer:
		l.pop()
		l.Push(Instruction{Op: AddPointer, Arg: last.Arg + insn.Arg})

	// ptr = a; ptr += b; => ptr = a + b;
	case hasLast && last.Op == SetPointer && insn.Op == AddPointer:
		l.pop()
		l.Push(Instruction{Op: SetPointer, Arg: last.Arg + insn.Arg})

	// ptr  = a; ptr = b; => ptr = b;
	// ptr += a; ptr = b; => ptr = b;
	case hasLast && (last.Op == SetPointer || last.Op == AddPointer) && insn.Op == SetPointer:
		l.pop()
		l.Push(insn)

	// while(value) value--; => value = 0;
	case hasLast && last.Op == AddValue && insn.Op == EndLoop &&
		last.Arg%2 != 0 && len(l.list) >= 2 && l.list[len(l.list)-2].Op == BeginLoop:
		l.pop()
		l.pop()
		l.Push(Instruction{Op: SetValue, Arg: 0})

	// while(value != 0) { ... }; value += a; => while(value != 0) { ... }; value = a;
	case hasLast && last.Op == EndLoop && insn.Op == AddValue:
		l.Push(Instruction{Op: SetValue, Arg: insn.Arg})

	// while(value != 0) { ... }; value = 0; => while(value != 0) { ... };
	case hasLast && last.Op == EndLoop && insn.Op == SetValue && insn.Arg == 0:

	// value = 0;           while(value) { ... } => value = 0;
	// while(a) { stmt(); } while(a)     { ... } => while (a) { stmt(); }
	case hasLast && insn.Op == BeginLoop &&
		(last.Op == EndLoop || (last.Op == SetValue && last.Arg == 0)):
		l.loopCommentDepth++

	default:
		l.list = append(l.list, insn)
	}
}

func (l *List) pop() Instruction {
	insn := l.list[len(l.list)-1]
	l.list = l.list[:len(l.list)-1]
	return insn
}
