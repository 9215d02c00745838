package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	StepSize          float64 // Step size alpha (default: 0.001)
	FirstMomentDecay  float64 // beta1 (default: 0.9)
	SecondMomentDecay float64 // beta2 (default: 0.999)
	Conditioning      float64 // Term for numerical stability (default: 1e-8)
}

// NewAdam creates the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam keeps exponential moving averages of the gradient and of its square,
// with bias correction compensating for their zero initialization:
//
//	t     = t + 1
//	m     = beta1 * m + (1-beta1) * gradient
//	v     = beta2 * v + (1-beta2) * gradient²
//	m_hat = m / (1 - beta1^t)
//	v_hat = v / (1 - beta2^t)
//	params = params - alpha * m_hat / (sqrt(v_hat) + eps)
//
// The step counter is incremented before the bias-correction denominators
// are computed.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
func NewAdam(config AdamConfig) *Algorithm {
	if config.StepSize == 0 {
		config.StepSize = 0.001
	}
	if config.FirstMomentDecay == 0 {
		config.FirstMomentDecay = 0.9
	}
	if config.SecondMomentDecay == 0 {
		config.SecondMomentDecay = 0.999
	}
	if config.Conditioning == 0 {
		config.Conditioning = 1e-8
	}
	alpha := config.StepSize
	beta1 := config.FirstMomentDecay
	beta2 := config.SecondMomentDecay
	eps := config.Conditioning

	init := func(n int) State {
		return State{
			Vectors: map[string][]float64{
				"first_moment":  make([]float64, n),
				"second_moment": make([]float64, n),
			},
			Counters: map[string]int64{
				"num_steps": 0,
			},
		}
	}

	update := func(s State, gradient []float64) (State, error) {
		t := s.Counter("num_steps") + 1

		m := Accumulate(beta1, s.Vector("first_moment"), gradient)
		gradSq := make([]float64, len(gradient))
		floats.MulTo(gradSq, gradient, gradient)
		v := Accumulate(beta2, s.Vector("second_moment"), gradSq)

		biasCorrection1 := 1 - math.Pow(beta1, float64(t))
		biasCorrection2 := 1 - math.Pow(beta2, float64(t))

		params := make([]float64, len(s.Params))
		for i := range params {
			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2
			params[i] = s.Params[i] - alpha*mHat/(math.Sqrt(vHat)+eps)
		}

		return State{
			Params: params,
			Vectors: map[string][]float64{
				"first_moment":  m,
				"second_moment": v,
			},
			Counters: map[string]int64{
				"num_steps": t,
			},
		}, nil
	}

	return NewAlgorithm("adam", init, update)
}
