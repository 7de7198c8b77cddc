package token

import "fmt"

// Kind is the lexical category of a token. Keyword kinds are the uppercased
// keyword, operator and punctuation kinds are the literal text itself.
type Kind string

const (
	// Keywords.
	DEF   Kind = "DEF"
	CLASS Kind = "CLASS"
	IF    Kind = "IF"
	TRUE  Kind = "TRUE"
	FALSE Kind = "FALSE"
	NIL   Kind = "NIL"

	// Literals and identifiers.
	IDENTIFIER Kind = "IDENTIFIER"
	CONSTANT   Kind = "CONSTANT"
	NUMBER     Kind = "NUMBER"
	STRING     Kind = "STRING"

	// Layout.
	INDENT  Kind = "INDENT"
	DEDENT  Kind = "DEDENT"
	NEWLINE Kind = "NEWLINE"

	// Multi-character operators.
	OR     Kind = "||"
	AND    Kind = "&&"
	EQ     Kind = "=="
	NOTEQ  Kind = "!="
	LTE    Kind = "<="
	GTE    Kind = ">="
	ASSIGN Kind = "="

	// Single-character tokens the parser cares about.
	LEFTPAREN  Kind = "("
	RIGHTPAREN Kind = ")"
	COMMA      Kind = ","
	DOT        Kind = "."
	SEMICOLON  Kind = ";"
	BANG       Kind = "!"
	PLUS       Kind = "+"
	MINUS      Kind = "-"
	STAR       Kind = "*"
	SLASH      Kind = "/"
	LT         Kind = "<"
	GT         Kind = ">"
)

// Token is a kind paired with its lexeme. Literal holds the parsed value for
// NUMBER (int), STRING (string), and the indent width for INDENT and DEDENT.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal any
}

func (t Token) String() string {
	switch t.Kind {
	case INDENT, DEDENT, NUMBER:
		return fmt.Sprintf("%s(%v)", t.Kind, t.Literal)
	case IDENTIFIER, CONSTANT:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
	case STRING:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	case NEWLINE:
		return string(NEWLINE)
	}
	return string(t.Kind)
}
