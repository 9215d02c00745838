package optim

import "gonum.org/v1/gonum/floats"

// Accumulate computes an exponential running average, element-wise:
//
//	new_avg = decay*avg + (1-decay)*value
//
// decay must be in [0, 1); avg and value must have equal length. ADADELTA
// feeds it squared gradients and squared steps, Adam feeds it gradients and
// squared gradients. The inputs are left untouched.
func Accumulate(decay float64, avg, value []float64) []float64 {
	out := make([]float64, len(avg))
	floats.ScaleTo(out, decay, avg)
	floats.AddScaled(out, 1-decay, value)
	return out
}
