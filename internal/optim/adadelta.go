package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AdaDeltaConfig holds configuration for the ADADELTA optimizer.
type AdaDeltaConfig struct {
	DecayRate    float64 // Accumulator decay rate (default: 0.95, range [0, 1))
	Conditioning float64 // Added under the square roots to avoid division by zero (default: 1e-6)
}

// NewAdaDelta creates the ADADELTA optimizer.
//
// ADADELTA scales each step by the ratio of two running RMS values, so no
// global learning rate is needed:
//
//	acc_g = decay * acc_g + (1-decay) * gradient²
//	step  = gradient * rms(acc_s) / rms(acc_g)    // rms(v) = sqrt(v + eps)
//	acc_s = decay * acc_s + (1-decay) * step²
//	params = params - step
//
// The ordering is load-bearing: the gradient accumulator is refreshed before
// the step is computed, while rms(acc_s) uses the accumulator from the
// previous step.
//
// Reference: "ADADELTA: An Adaptive Learning Rate Method" (Zeiler, 2012).
func NewAdaDelta(config AdaDeltaConfig) *Algorithm {
	if config.DecayRate == 0 {
		config.DecayRate = 0.95
	}
	if config.Conditioning == 0 {
		config.Conditioning = 1e-6
	}
	decay := config.DecayRate
	eps := config.Conditioning

	init := func(n int) State {
		return State{
			Vectors: map[string][]float64{
				"acc_gradient": make([]float64, n),
				"acc_step":     make([]float64, n),
			},
		}
	}

	update := func(s State, gradient []float64) (State, error) {
		gradSq := make([]float64, len(gradient))
		floats.MulTo(gradSq, gradient, gradient)
		accGrad := Accumulate(decay, s.Vector("acc_gradient"), gradSq)

		prevAccStep := s.Vector("acc_step")
		step := make([]float64, len(gradient))
		for i, g := range gradient {
			step[i] = g * math.Sqrt(prevAccStep[i]+eps) / math.Sqrt(accGrad[i]+eps)
		}

		stepSq := make([]float64, len(step))
		floats.MulTo(stepSq, step, step)
		accStep := Accumulate(decay, prevAccStep, stepSq)

		params := make([]float64, len(s.Params))
		floats.SubTo(params, s.Params, step)

		return State{
			Params: params,
			Vectors: map[string][]float64{
				"acc_gradient": accGrad,
				"acc_step":     accStep,
			},
		}, nil
	}

	return NewAlgorithm("adadelta", init, update)
}
