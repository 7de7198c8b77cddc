package lexer

// indentStack holds the widths of the open blocks. The bottom of the stack is
// implicitly 0.
type indentStack []int

func (s *indentStack) push(width int) {
	*s = append(*s, width)
}

// pop removes the innermost block and reports the width that is current after
// it.
func (s *indentStack) pop() int {
	*s = (*s)[:len(*s)-1]
	return s.top()
}

func (s indentStack) top() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func (s indentStack) empty() bool {
	return len(s) == 0
}
