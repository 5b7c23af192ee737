// Package calculator provides the stateless calculator used as the canonical
// annotation fixture. Its comments carry @doc blocks so the repo can be
// scanned by its own tool.
package calculator

import "errors"

// ErrOverflow is returned by the checked operations when the exact result is
// outside the int32 range.
var ErrOverflow = errors.New("arithmetic overflow")

// @doc calculator Calculator
// @description Stateless calculator over signed 32-bit integers
// @example
// ```go
// calc := calculator.New()
// result := calc.Add(5, 3)
// ```
type Calculator struct{}

// @doc calculator_new new
// @description Creates a new Calculator instance
// @returns Calculator A new instance
func New() Calculator {
	return Calculator{}
}

// Add returns the sum of a and b. Overflow wraps per two's complement,
// matching Go's native int32 arithmetic.
//
// @doc calculator_add add
// @description Adds two integers
// @param a int32 First number
// @param b int32 Second number
// @returns int32 The sum
func (Calculator) Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a minus b. Overflow wraps per two's complement.
//
// @doc calculator_subtract subtract
// @description Subtracts two numbers
// @param a int32 First number
// @param b int32 Second number
// @returns int32 The difference
func (Calculator) Subtract(a, b int32) int32 {
	return a - b
}

// AddChecked returns a+b, or ErrOverflow when the exact sum does not fit
// in an int32.
func (Calculator) AddChecked(a, b int32) (int32, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// SubtractChecked returns a-b, or ErrOverflow when the exact difference
// does not fit in an int32.
func (Calculator) SubtractChecked(a, b int32) (int32, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, ErrOverflow
	}
	return diff, nil
}
