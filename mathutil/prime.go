package mathutil

// IsPrime determines whether n is a prime number.
//
// A prime is greater than 1 and has no positive divisors other than 1 and
// itself. Trial division checks 2, 3, and then candidates of the form
// 6k±1 up to the square root of n.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
