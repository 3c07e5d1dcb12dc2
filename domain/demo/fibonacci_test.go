package demo

import "testing"

func TestFibonacciSum(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{n: 0, want: 0},
		{n: 1, want: 0},
		{n: 2, want: 1},
		{n: 3, want: 2},
		{n: 10, want: 88},
		{n: 50, want: 20365011073},
		{n: -1, want: 0},
	}

	for _, tt := range tests {
		if got := FibonacciSum(tt.n); got != tt.want {
			t.Errorf("FibonacciSum(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
