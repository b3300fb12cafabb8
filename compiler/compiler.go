// Package compiler lowers an instruction list to a standalone C
// translation unit. The generated function allocates the tape, zeroes
// it, runs the program and returns the current cell, with the fatal
// allocation check up front.
package compiler

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bfkit/bfrt/program"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FunctionName is the name of the generated entry function.
const FunctionName = "brainfuck"

type Config struct {
	TapeSize int
	Overflow program.OverflowMode
	EmitMain bool
}

type Emitter struct {
	logger *logrus.Entry
}

func New(logger *logrus.Entry) *Emitter {
	return &Emitter{logger: logger}
}

func (e *Emitter) Emit(out io.Writer, insns []program.Instruction, config Config) error {
	e.logger.WithFields(logrus.Fields{
		"instructions": len(insns),
		"tapeSize":     config.TapeSize,
		"overflow":     config.Overflow.String(),
		"emitMain":     config.EmitMain,
	}).Debug("emitting C")

	buf := &bytes.Buffer{}

	buf.WriteString("#include <stdio.h>\n")
	buf.WriteString("#include <stdlib.h>\n\n")

	if containsOp(insns, program.DebugLog) {
		emitDebugLog(buf)
	}

	fmt.Fprintf(buf, "int %s(void)\n{\n", FunctionName)
	emitPrologue(buf, config.TapeSize)

	needsAbort := false
	depth := 1
	for i, insn := range insns {

		switch insn.Op {

		case program.SetValue:
			emitLine(buf, depth, "tape[index] = %d;", insn.Arg)

		case program.AddValue:
			emitLine(buf, depth, "tape[index] += %d;", insn.Arg)

		case program.SetPointer:
			emitLine(buf, depth, "index = %d;", insn.Arg)
			needsAbort = emitOverflowCheck(buf, depth, config.Overflow) || needsAbort

		case program.AddPointer:
			emitLine(buf, depth, "index += %d;", insn.Arg)
			needsAbort = emitOverflowCheck(buf, depth, config.Overflow) || needsAbort

		case program.Input:
			emitLine(buf, depth, "tape[index] = (unsigned char)getchar();")

		case program.Output:
			emitLine(buf, depth, "putchar(tape[index]);")

		case program.BeginLoop:
			emitLine(buf, depth, "while (tape[index] != 0) {")
			depth++

		case program.EndLoop:
			if depth == 1 {
				return &UnbalancedProgramError{}
			}
			depth--
			emitLine(buf, depth, "}")

		case program.DebugLog:
			emitLine(buf, depth, "debug_log(%d, tape, size, index);", i)
		}
	}

	if depth != 1 {
		return &UnbalancedProgramError{}
	}

	if len(insns) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("\tint result = (int)tape[index];\n")
	buf.WriteString("\tfree(tape);\n")
	buf.WriteString("\treturn result;\n")

	if needsAbort {
		buf.WriteString("\noverflow:\n")
		buf.WriteString("\tfree(tape);\n")
		buf.WriteString("\treturn -1;\n")
	}

	buf.WriteString("}\n")

	if config.EmitMain {
		fmt.Fprintf(buf, "\nint main(void)\n{\n\treturn %s();\n}\n", FunctionName)
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing generated C")
	}
	return nil
}

func emitPrologue(buf *bytes.Buffer, tapeSize int) {
	fmt.Fprintf(buf, "\tsize_t size = %d;\n\n", tapeSize)
	buf.WriteString("\tunsigned char* tape = (unsigned char*)malloc(size * sizeof(unsigned char));\n")
	buf.WriteString("\tif (tape == NULL) {\n")
	buf.WriteString("\t\tprintf(\"Error: Cannot allocate enough memory\\n\");\n")
	buf.WriteString("\t\texit(1);\n")
	buf.WriteString("\t}\n\n")
	buf.WriteString("\tfor (size_t i = 0; i < size; i++) {\n")
	buf.WriteString("\t\ttape[i] = 0;\n")
	buf.WriteString("\t}\n\n")
	buf.WriteString("\tsize_t index = 0;\n\n")
}

// emitOverflowCheck guards a pointer move. It reports whether the
// overflow label is required. The index is unsigned, so a negative move
// is caught by the single upper-bound comparison.
func emitOverflowCheck(buf *bytes.Buffer, depth int, mode program.OverflowMode) bool {
	switch mode {
	case program.OverflowWrap:
		emitLine(buf, depth, "index %%= size;")
	case program.OverflowAbort:
		emitLine(buf, depth, "if (index >= size) goto overflow;")
		return true
	case program.OverflowUndefined:
	}
	return false
}

func emitDebugLog(buf *bytes.Buffer) {
	buf.WriteString("static void debug_log(size_t insn, unsigned char* tape, size_t size, size_t index)\n")
	buf.WriteString("{\n")
	buf.WriteString("\tprintf(\"\\n%05zu %05zu\", insn, index);\n")
	buf.WriteString("\tfor (size_t i = 0; i < size; i++) {\n")
	buf.WriteString("\t\tputchar(tape[i]);\n")
	buf.WriteString("\t\tputchar('|');\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\tputchar('\\n');\n")
	buf.WriteString("}\n\n")
}

func emitLine(buf *bytes.Buffer, depth int, format string, args ...interface{}) {
	buf.WriteString(strings.Repeat("\t", depth))
	fmt.Fprintf(buf, format, args...)
	buf.WriteString("\n")
}

func containsOp(insns []program.Instruction, op program.Op) bool {
	for _, insn := range insns {
		if insn.Op == op {
			return true
		}
	}
	return false
}
