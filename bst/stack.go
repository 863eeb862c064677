package bst

type stack[T Number] struct {
	elements []*Node[T]
}

func newStack[T Number]() *stack[T] {
	return &stack[T]{
		elements: []*Node[T]{},
	}
}

func (s *stack[T]) push(n *Node[T]) {
	s.elements = append(s.elements, n)
}

// pop returns the most recently pushed node. The boolean indicates success,
// which is false if the stack was empty.
func (s *stack[T]) pop() (*Node[T], bool) {
	if len(s.elements) == 0 {
		return nil, false
	}
	n := s.elements[len(s.elements)-1]
	s.elements[len(s.elements)-1] = nil
	s.elements = s.elements[:len(s.elements)-1]
	return n, true
}

// pushLeftSpine pushes n and then each left child below it.
func (s *stack[T]) pushLeftSpine(n *Node[T]) {
	for n != nil {
		s.push(n)
		n = n.Left
	}
}
