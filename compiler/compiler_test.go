package compiler_test

import (
	"bytes"

	"github.com/bfkit/bfrt/compiler"
	"github.com/bfkit/bfrt/program"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Emit", func() {
	var (
		emitter *compiler.Emitter
		out     *bytes.Buffer
		config  compiler.Config
	)

	parse := func(src string) []program.Instruction {
		GinkgoHelper()
		insns, err := program.Parse([]byte(src))
		Expect(err).NotTo(HaveOccurred())
		return insns
	}

	emit := func(src string) string {
		GinkgoHelper()
		Expect(emitter.Emit(out, parse(src), config)).To(Succeed())
		return out.String()
	}

	BeforeEach(func() {
		emitter = compiler.New(logrus.WithField("suite", "compiler"))
		out = &bytes.Buffer{}
		config = compiler.Config{
			TapeSize: 4,
			Overflow: program.OverflowWrap,
		}
	})

	It("emits a complete translation unit", func() {
		config.EmitMain = true

		Expect(emit("++.")).To(Equal(`#include <stdio.h>
#include <stdlib.h>

int brainfuck(void)
{
	size_t size = 4;

	unsigned char* tape = (unsigned char*)malloc(size * sizeof(unsigned char));
	if (tape == NULL) {
		printf("Error: Cannot allocate enough memory\n");
		exit(1);
	}

	for (size_t i = 0; i < size; i++) {
		tape[i] = 0;
	}

	size_t index = 0;

	tape[index] += 1;
	tape[index] += 1;
	putchar(tape[index]);

	int result = (int)tape[index];
	free(tape);
	return result;
}

int main(void)
{
	return brainfuck();
}
`))
	})

	It("leaves main out by default", func() {
		Expect(emit("+")).NotTo(ContainSubstring("int main"))
	})

	It("lowers loops to while statements", func() {
		src := emit("[->+<]")
		Expect(src).To(ContainSubstring("\twhile (tape[index] != 0) {\n"))
		Expect(src).To(ContainSubstring("\t\ttape[index] += -1;\n"))
		Expect(src).To(ContainSubstring("\t\tindex += 1;\n"))
		Expect(src).To(ContainSubstring("\t\tindex += -1;\n"))
		Expect(src).To(ContainSubstring("\t}\n"))
	})

	It("lowers input and output to getchar and putchar", func() {
		src := emit(",.")
		Expect(src).To(ContainSubstring("tape[index] = (unsigned char)getchar();"))
		Expect(src).To(ContainSubstring("putchar(tape[index]);"))
	})

	It("lowers folded instructions", func() {
		insns := program.Optimize(parse("+++>>"))
		Expect(emitter.Emit(out, insns, config)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("tape[index] += 3;"))
		Expect(out.String()).To(ContainSubstring("index += 2;"))
	})

	Context("memory overflow modes", func() {
		It("wraps the index in wrap mode", func() {
			Expect(emit(">")).To(ContainSubstring("index %= size;"))
		})

		It("jumps to the overflow block in abort mode", func() {
			config.Overflow = program.OverflowAbort

			src := emit(">")
			Expect(src).To(ContainSubstring("if (index >= size) goto overflow;"))
			Expect(src).To(ContainSubstring("\noverflow:\n\tfree(tape);\n\treturn -1;\n"))
		})

		It("emits no check in undefined mode", func() {
			config.Overflow = program.OverflowUndefined

			src := emit("><")
			Expect(src).NotTo(ContainSubstring("%= size"))
			Expect(src).NotTo(ContainSubstring("goto overflow"))
			Expect(src).NotTo(ContainSubstring("\noverflow:"))
		})

		It("omits the overflow block when no pointer ever moves", func() {
			config.Overflow = program.OverflowAbort

			Expect(emit("+.")).NotTo(ContainSubstring("\noverflow:"))
		})
	})

	Context("debug instructions", func() {
		It("emits the debug_log helper and a call per instruction", func() {
			src := emit("+#")
			Expect(src).To(ContainSubstring("static void debug_log(size_t insn, unsigned char* tape, size_t size, size_t index)"))
			Expect(src).To(ContainSubstring("debug_log(1, tape, size, index);"))
		})

		It("leaves the helper out otherwise", func() {
			Expect(emit("+.")).NotTo(ContainSubstring("debug_log"))
		})
	})

	Context("when the instruction list has unbalanced loops", func() {
		It("fails on a stray end", func() {
			err := emitter.Emit(out, []program.Instruction{{Op: program.EndLoop}}, config)
			Expect(err).To(MatchError(&compiler.UnbalancedProgramError{}))
		})

		It("fails on an unclosed begin", func() {
			err := emitter.Emit(out, []program.Instruction{{Op: program.BeginLoop}}, config)
			Expect(err).To(MatchError(&compiler.UnbalancedProgramError{}))
		})
	})
})
