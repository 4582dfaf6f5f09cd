package types

import (
	"fmt"
	"math"
)

// ShapeMismatchError reports an input array whose length disagrees with the panel or node count
type ShapeMismatchError struct {
	Input     string
	Want, Got int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch for %s: expected length %d, got %d", e.Input, e.Want, e.Got)
}

// DomainError reports a value outside the physical domain of a formula.
// Index is -1 when the offending value is a reduction rather than an element.
type DomainError struct {
	Input  string
	Index  int
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("domain error in %s: %s (value = %g)", e.Input, e.Reason, e.Value)
	}
	return fmt.Sprintf("domain error in %s[%d]: %s (value = %g)", e.Input, e.Index, e.Reason, e.Value)
}

func CheckFinite(name string, x []float64) error {
	for i, val := range x {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return &DomainError{Input: name, Index: i, Value: val, Reason: "value is not finite"}
		}
	}
	return nil
}

func CheckPositive(name string, x []float64) error {
	for i, val := range x {
		if !(val > 0) {
			return &DomainError{Input: name, Index: i, Value: val, Reason: "value must be positive"}
		}
	}
	return nil
}
