package utils

// Second discards the first of two values. Useful for lifting the second
// result of a call into an expression.
func Second[T any](_ any, t T) T { return t }

// Unpack2 spreads up to the first two elements of a slice into separate
// values. Missing elements are left at their zero value.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}
