package lexer

import "fmt"

// MalformedIndentError reports a block opened with an indent width that is
// not deeper than the enclosing block.
type MalformedIndentError struct {
	Line    int
	Width   int
	Current int
}

func (e MalformedIndentError) Error() string {
	return fmt.Sprintf("at %d: bad indent level, got %d indents, expected > %d", e.Line, e.Width, e.Current)
}

// MissingBlockHeaderError reports a line indented deeper than the current
// block without a trailing ':' on the line before it.
type MissingBlockHeaderError struct {
	Line    int
	Width   int
	Current int
}

func (e MissingBlockHeaderError) Error() string {
	return fmt.Sprintf("at %d: missing ':', got %d indents, expected <= %d", e.Line, e.Width, e.Current)
}
