package config

import "fmt"

type InvalidTapeSizeError struct {
	Size int
}

func (e *InvalidTapeSizeError) Error() string {
	return fmt.Sprintf("tape size must be positive, got %d", e.Size)
}
