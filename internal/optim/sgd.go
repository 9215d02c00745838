package optim

import "gonum.org/v1/gonum/floats"

// SGDConfig holds configuration for plain gradient descent.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.1)
}

// NewSGD returns plain gradient descent as a stateless update rule.
//
// Update rule:
//
//	params = params - lr * gradient
//
// No accumulators are kept; wrap the result with FromRule when a driver
// needs the stateful representation.
func NewSGD(config SGDConfig) Rule {
	if config.LR == 0 {
		config.LR = 0.1
	}
	lr := config.LR

	return func(params, gradient []float64) []float64 {
		out := make([]float64, len(params))
		floats.AddScaledTo(out, params, -lr, gradient)
		return out
	}
}
