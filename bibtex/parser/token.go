// Package parser provides an error-tolerant, lossless parser for BibTeX
// databases. Text outside of entries is kept as Junk nodes.
package parser

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWhitespace
	TokenLineBreak
	TokenLCurly
	TokenRCurly
	TokenLParen
	TokenRParen
	TokenComma
	TokenHash
	TokenQuote
	TokenEq
	TokenType
	TokenWord
	TokenCommandName
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenWhitespace:  "Whitespace",
	TokenLineBreak:   "LineBreak",
	TokenLCurly:      "{",
	TokenRCurly:      "}",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenComma:       ",",
	TokenHash:        "#",
	TokenQuote:       `"`,
	TokenEq:          "=",
	TokenType:        "Type",
	TokenWord:        "Word",
	TokenCommandName: "CommandName",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenLineBreak
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Literal)
}

// TypeName returns the lowercased entry type of a Type token without the
// leading @.
func (t Token) TypeName() string {
	if t.Kind != TokenType {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(t.Literal, "@"))
}
