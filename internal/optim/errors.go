package optim

import "fmt"

// ConfigError reports an optimizer that was wired up incorrectly, most
// commonly an optimizer constructor registered where a constructed optimizer
// or update rule was expected. It is signaled at the point of misuse, at
// wrap time when the mistake is visible from the value's type and otherwise
// on the first step.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return "invalid optimizer configuration: " + e.Detail
}

// ShapeError reports mismatched vector lengths: a gradient whose length
// differs from the parameter vector, or carried accumulator state sized for
// a different parameter count. The offending call is rejected outright;
// vectors are never truncated or padded.
type ShapeError struct {
	Op   string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: vector length mismatch: want %d, got %d", e.Op, e.Want, e.Got)
}
