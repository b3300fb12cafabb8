package program

import (
	"github.com/hashicorp/go-multierror"
)

// Parse maps Brainfuck source to instructions. Unknown bytes are
// comments and are skipped. '#' is the conventional debug extension and
// maps to DebugLog. All bracket errors are reported, not just the first.
func Parse(src []byte) ([]Instruction, error) {
	var (
		result    []Instruction
		openStack []int
		parseErr  *multierror.Error
	)

	for pos, c := range src {
		switch c {
		case '-':
			result = append(result, Instruction{Op: AddValue, Arg: -1})
		case '+':
			result = append(result, Instruction{Op: AddValue, Arg: 1})
		case '<':
			result = append(result, Instruction{Op: AddPointer, Arg: -1})
		case '>':
			result = append(result, Instruction{Op: AddPointer, Arg: 1})
		case ',':
			result = append(result, Instruction{Op: Input})
		case '.':
			result = append(result, Instruction{Op: Output})
		case '[':
			openStack = append(openStack, pos)
			result = append(result, Instruction{Op: BeginLoop})
		case ']':
			if len(openStack) == 0 {
				parseErr = multierror.Append(parseErr, &UnmatchedEndLoopError{Position: pos})
				continue
			}
			openStack = openStack[:len(openStack)-1]
			result = append(result, Instruction{Op: EndLoop})
		case '#':
			result = append(result, Instruction{Op: DebugLog})
		}
	}

	for _, pos := range openStack {
		parseErr = multierror.Append(parseErr, &UnclosedLoopError{Position: pos})
	}

	if err := parseErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}
