package mathutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	utilkiterrors "utilkit.dev/utilkit/errors"
)

func TestFibonacci(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		expected uint64
	}{
		{
			name:     "base case zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "base case one",
			input:    1,
			expected: 1,
		},
		{
			name:     "index two",
			input:    2,
			expected: 1,
		},
		{
			name:     "index ten",
			input:    10,
			expected: 55,
		},
		{
			name:     "index twenty",
			input:    20,
			expected: 6765,
		},
		{
			name:     "largest representable index",
			input:    MaxFibonacciIndex,
			expected: 12200160415121876738,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Fibonacci(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestFibonacciRecurrence(t *testing.T) {
	t.Parallel()

	for n := 2; n <= MaxFibonacciIndex; n++ {
		fn, err := Fibonacci(n)
		require.NoError(t, err)
		fn1, err := Fibonacci(n - 1)
		require.NoError(t, err)
		fn2, err := Fibonacci(n - 2)
		require.NoError(t, err)
		require.Equal(t, fn1+fn2, fn, "recurrence broken at n=%d", n)
	}
}

func TestFibonacciInvalidInput(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, -100, MaxFibonacciIndex + 1} {
		_, err := Fibonacci(n)
		require.Error(t, err, "n=%d", n)
		require.True(t, errors.Is(err, utilkiterrors.ErrInvalidArgument), "n=%d", n)
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		expected uint64
	}{
		{
			name:     "zero is one",
			input:    0,
			expected: 1,
		},
		{
			name:     "one",
			input:    1,
			expected: 1,
		},
		{
			name:     "five",
			input:    5,
			expected: 120,
		},
		{
			name:     "ten",
			input:    10,
			expected: 3628800,
		},
		{
			name:     "largest representable input",
			input:    MaxFactorialInput,
			expected: 2432902008176640000,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Factorial(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestFactorialInvalidInput(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, -42, MaxFactorialInput + 1} {
		_, err := Factorial(n)
		require.Error(t, err, "n=%d", n)
		require.True(t, errors.Is(err, utilkiterrors.ErrInvalidArgument), "n=%d", n)
	}
}
