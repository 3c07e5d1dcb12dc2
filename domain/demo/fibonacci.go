package demo

// DefaultFibonacciTerms is the number of leading Fibonacci terms summed when
// no other count is configured.
const DefaultFibonacciTerms = 50

// FibonacciSum returns the sum of the first n terms of the Fibonacci
// sequence with F(0)=0 and F(1)=1. Non-positive n yields 0.
func FibonacciSum(n int) uint64 {
	var a, b, total uint64 = 0, 1, 0
	for i := 0; i < n; i++ {
		total += a
		a, b = b, a+b
	}
	return total
}
