package util

type Set[T comparable] struct {
	data map[T]struct{}
}

func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		data: make(map[T]struct{}),
	}
}

func (s Set[T]) Length() int {
	return len(s.data)
}

// Add reports whether item was new
func (s *Set[T]) Add(item T) bool {
	if _, found := s.data[item]; found {
		return false
	}
	s.data[item] = struct{}{}
	return true
}
