package cpu

const (
	STACK_LIMIT = 16 // Maximum stack depth
)

// Stack is the fixed depth return address stack.
// Pointer is the index of the next free slot.
type Stack struct {
	Data    [STACK_LIMIT]uint16
	Pointer int
}

// Push saves a value, reporting false if the stack is full.
func (s *Stack) Push(value uint16) (ok bool) {
	if s.Full() {
		return
	}

	s.Data[s.Pointer] = value
	s.Pointer++
	return true
}

// Pop removes the most recently pushed value, reporting false if empty.
func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Pointer--
	}
	return
}

// Empty reports whether no values are saved.
func (s *Stack) Empty() bool {
	return s.Pointer <= 0
}

// Full reports whether a push would be refused.
func (s *Stack) Full() bool {
	return s.Pointer >= STACK_LIMIT
}

// Peek returns the most recently pushed value, reporting false if the
// stack is empty or Pointer is out of range.
func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() || s.Pointer > STACK_LIMIT {
		return
	}

	return s.Data[s.Pointer-1], true
}

// Depth returns the number of saved values.
func (s *Stack) Depth() int {
	return s.Pointer
}

// Reset discards all saved values.
func (s *Stack) Reset() {
	clear(s.Data[:])
	s.Pointer = 0
}
