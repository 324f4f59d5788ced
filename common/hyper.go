package common

import "fmt"

// Hyperparameters are the step size and iteration count of a
// gradient-descent run. They are fixed for the duration of one run.
type Hyperparameters struct {
	LearningRate float64
	Iterations   int
}

// Validate checks the iteration count. The learning rate is not checked
// against the scale of the problem; a rate that is too large makes the
// iterates diverge.
func (h Hyperparameters) Validate() error {
	if h.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidParameter, h.Iterations)
	}
	return nil
}
