package compiler

type UnbalancedProgramError struct{}

func (e *UnbalancedProgramError) Error() string {
	return "program has unbalanced loop instructions"
}
