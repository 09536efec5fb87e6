package mines

func iif[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

func repeat[T any](v T, n int) []T {
	if n == 0 {
		return nil
	}
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}
