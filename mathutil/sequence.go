package mathutil

import (
	"fmt"

	utilkiterrors "utilkit.dev/utilkit/errors"
)

const (
	// MaxFibonacciIndex is the largest index whose Fibonacci number fits in a uint64
	MaxFibonacciIndex = 93

	// MaxFactorialInput is the largest n whose factorial fits in a uint64
	MaxFactorialInput = 20
)

// Fibonacci computes the nth Fibonacci number iteratively.
//
// The sequence is defined for n >= 0 with Fibonacci(0) == 0 and
// Fibonacci(1) == 1; every later term is the sum of the two preceding
// terms. Indices outside [0, MaxFibonacciIndex] fail with an
// invalid-argument error.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, utilkiterrors.NewInvalidArgumentError("Fibonacci", fmt.Sprintf("index %d must be non-negative", n))
	}
	if n > MaxFibonacciIndex {
		return 0, utilkiterrors.NewInvalidArgumentError("Fibonacci", fmt.Sprintf("index %d exceeds %d, the largest index representable in uint64", n, MaxFibonacciIndex))
	}

	a, b := uint64(0), uint64(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// Factorial computes n! iteratively, with Factorial(0) == 1.
//
// Inputs outside [0, MaxFactorialInput] fail with an invalid-argument
// error.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, utilkiterrors.NewInvalidArgumentError("Factorial", fmt.Sprintf("input %d must be non-negative", n))
	}
	if n > MaxFactorialInput {
		return 0, utilkiterrors.NewInvalidArgumentError("Factorial", fmt.Sprintf("input %d exceeds %d, the largest input representable in uint64", n, MaxFactorialInput))
	}

	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}
