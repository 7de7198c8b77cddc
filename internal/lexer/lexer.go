// Package lexer turns Awesome source text into a flat token list, including
// the INDENT, DEDENT and NEWLINE markers that delimit blocks.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/awesome/internal/token"
)

var keywords = map[string]token.Kind{
	"def":   token.DEF,
	"class": token.CLASS,
	"if":    token.IF,
	"true":  token.TRUE,
	"false": token.FALSE,
	"nil":   token.NIL,
}

// Order matters: "||" and friends must be tried before their one-character
// prefixes fall through to the catch-all rule.
var operators = []token.Kind{token.OR, token.AND, token.EQ, token.NOTEQ, token.LTE, token.GTE}

// Lex scans source and returns its tokens in order. The stream has no EOF
// marker; every INDENT is balanced by a DEDENT, synthesized at the end of the
// input if needed. On error no tokens are returned.
func Lex(source string) ([]token.Token, error) {
	l := lexer{
		source:  []rune(chomp(source)),
		tokens:  []token.Token{},
		current: 0,
		line:    1,
	}

	for !l.isAtEnd() {
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	for !l.indents.empty() {
		l.emit(token.DEDENT, "", l.indents.pop())
	}
	return l.tokens, nil
}

type lexer struct {
	source []rune
	tokens []token.Token

	current int // current position in source
	line    int // current line number

	indents indentStack
}

// chomp drops a single trailing line break so the last line does not close
// its blocks with a NEWLINE.
func chomp(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peekAt(offset int) rune {
	if l.current+offset >= len(l.source) {
		return '\x00'
	}
	return l.source[l.current+offset]
}

func (l *lexer) emit(kind token.Kind, lexeme string, literal any) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: lexeme, Line: l.line, Literal: literal})
}

// scanToken applies the first matching rule at the cursor.
func (l *lexer) scanToken() error {
	c := l.peekAt(0)
	switch {
	case isLower(c):
		l.identifier()
		return nil
	case isUpper(c):
		text := l.word()
		l.emit(token.CONSTANT, text, nil)
		return nil
	case isDigit(c):
		return l.number()
	case c == '"' && l.string():
		return nil
	case c == ':' && l.peekAt(1) == '\n' && l.peekAt(2) == ' ':
		return l.indent()
	case c == '\n':
		return l.newline()
	}

	if op, ok := l.operator(); ok {
		l.current += len(op)
		l.emit(op, string(op), nil)
		return nil
	}

	l.current++
	if c == ' ' {
		return nil
	}
	l.emit(token.Kind(string(c)), string(c), nil)
	return nil
}

func isLower(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isWord(c rune) bool {
	return isLower(c) || isUpper(c) || isDigit(c) || c == '_'
}

func (l *lexer) word() string {
	start := l.current
	l.current++
	for isWord(l.peekAt(0)) {
		l.current++
	}
	return string(l.source[start:l.current])
}

func (l *lexer) identifier() {
	text := l.word()
	if k, ok := keywords[text]; ok {
		l.emit(k, text, nil)
	} else {
		l.emit(token.IDENTIFIER, text, nil)
	}
}

func (l *lexer) number() error {
	start := l.current
	for isDigit(l.peekAt(0)) {
		l.current++
	}
	text := string(l.source[start:l.current])
	value, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("at %d: invalid number %s: %w", l.line, text, err)
	}
	l.emit(token.NUMBER, text, value)
	return nil
}

// string scans a double-quoted string. It reports false, consuming nothing,
// when there is no closing quote so the quote falls through to the
// single-character rule.
func (l *lexer) string() bool {
	end := l.current + 1
	for end < len(l.source) && l.source[end] != '"' {
		end++
	}
	if end >= len(l.source) {
		return false
	}

	value := string(l.source[l.current+1 : end])
	l.emit(token.STRING, string(l.source[l.current:end+1]), value)
	for _, r := range value {
		if r == '\n' {
			l.line++
		}
	}
	l.current = end + 1
	return true
}

// leadingSpaces counts the spaces starting at offset from the cursor.
func (l lexer) leadingSpaces(offset int) int {
	n := 0
	for l.peekAt(offset+n) == ' ' {
		n++
	}
	return n
}

// indent opens a block on ":\n" followed by a deeper indentation.
func (l *lexer) indent() error {
	width := l.leadingSpaces(2)
	current := l.indents.top()
	l.line++
	if width <= current {
		return MalformedIndentError{Line: l.line, Width: width, Current: current}
	}

	l.indents.push(width)
	l.emit(token.INDENT, "", width)
	l.current += width + 2
	return nil
}

// newline handles a line break that stays in the block or closes blocks.
func (l *lexer) newline() error {
	width := l.leadingSpaces(1)
	current := l.indents.top()
	l.line++

	for width < current {
		current = l.indents.pop()
		l.emit(token.DEDENT, "", current)
	}
	if width > current {
		return MissingBlockHeaderError{Line: l.line, Width: width, Current: current}
	}

	l.emit(token.NEWLINE, "\n", nil)
	l.current += width + 1
	return nil
}

func (l lexer) operator() (token.Kind, bool) {
	for _, op := range operators {
		if l.hasPrefix(string(op)) {
			return op, true
		}
	}
	return "", false
}

func (l lexer) hasPrefix(s string) bool {
	i := 0
	for _, r := range s {
		if l.peekAt(i) != r {
			return false
		}
		i++
	}
	return true
}
