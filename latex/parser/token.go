package parser

import "fmt"

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies inside the span. The end is inclusive
// so that a cursor sitting right after a token still counts as touching it.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenLineBreak
	TokenWhitespace
	TokenLineComment
	TokenLCurly
	TokenRCurly
	TokenLBrack
	TokenRBrack
	TokenLParen
	TokenRParen
	TokenComma
	TokenEq
	TokenPipe
	TokenWord
	TokenDollar
	TokenVerbatim
	TokenCommandName
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenLineBreak:   "LineBreak",
	TokenWhitespace:  "Whitespace",
	TokenLineComment: "LineComment",
	TokenLCurly:      "{",
	TokenRCurly:      "}",
	TokenLBrack:      "[",
	TokenRBrack:      "]",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenComma:       ",",
	TokenEq:          "=",
	TokenPipe:        "|",
	TokenWord:        "Word",
	TokenDollar:      "$",
	TokenVerbatim:    "Verbatim",
	TokenCommandName: "CommandName",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether the token carries no syntactic meaning.
func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenLineBreak || k == TokenLineComment
}

// Token is a slice of the source text. Command names carry their
// classification in Command; for every other kind Command is CommandGeneric.
type Token struct {
	Kind    TokenKind
	Command CommandKind
	Level   SectionLevel
	Span    Span
	Literal string
}

func (t Token) String() string {
	if t.Kind == TokenCommandName {
		return fmt.Sprintf("%s(%s) %q", t.Kind, t.Command, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Literal)
}

// CommandName returns the command name without the leading backslash.
func (t Token) CommandName() string {
	if t.Kind != TokenCommandName || len(t.Literal) == 0 {
		return ""
	}
	return t.Literal[1:]
}
