package ui

// Stack is a LIFO of values. The top is the last element.
type Stack[T any] struct {
	Items []T
}

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.Items = append(s.Items, v)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.Items) == 0 {
		return zero, false
	}
	top := s.Items[len(s.Items)-1]
	s.Items[len(s.Items)-1] = zero
	s.Items = s.Items[:len(s.Items)-1]
	return top, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.Items) == 0 {
		var zero T
		return zero, false
	}
	return s.Items[len(s.Items)-1], true
}

// Len returns the number of values in the stack.
func (s *Stack[T]) Len() int {
	return len(s.Items)
}
