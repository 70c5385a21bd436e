package engine

import "fmt"

// DomainError reports a threshold outside the table's covered range. The
// engine never extrapolates or clamps; whether to clamp before calling is
// the caller's policy.
type DomainError struct {
	Threshold float64
	Min       float64
	Max       float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("threshold %.4f outside table domain [%.2f, %.2f]", e.Threshold, e.Min, e.Max)
}
