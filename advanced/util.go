package advanced

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Stack of half-edges, used by the monotone triangulator. Each entry stands
// for the vertex the edge starts at.
type EdgeStack []EdgeRef

func (s *EdgeStack) Push(e EdgeRef) {
	*s = append(*s, e)
}

// Pop returns NoEdge when the stack is empty.
func (s *EdgeStack) Pop() EdgeRef {
	if len(*s) == 0 {
		return NoEdge
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *EdgeStack) Peek() EdgeRef {
	if len(*s) == 0 {
		return NoEdge
	}
	return (*s)[len(*s)-1]
}

// PeekSecond returns the entry below the top of the stack.
func (s *EdgeStack) PeekSecond() EdgeRef {
	if len(*s) < 2 {
		return NoEdge
	}
	return (*s)[len(*s)-2]
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}

func (s *EdgeStack) Len() int {
	return len(*s)
}
