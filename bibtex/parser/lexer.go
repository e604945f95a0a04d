package parser

import (
	"unicode"
	"unicode/utf8"
)

var punctuation = map[byte]TokenKind{
	'{': TokenLCurly,
	'}': TokenRCurly,
	'(': TokenLParen,
	')': TokenRParen,
	',': TokenComma,
	'#': TokenHash,
	'"': TokenQuote,
	'=': TokenEq,
}

type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize splits text into tokens covering every byte exactly once.
func Tokenize(text string) []Token {
	l := NewLexer(text)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	return Token{Kind: kind, Span: Span{Start: start, End: l.pos}, Literal: l.input[start:l.pos]}
}

func (l *Lexer) NextToken() Token {
	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()
	if kind, ok := punctuation[ch]; ok {
		l.pos++
		return l.token(kind, start)
	}

	switch ch {
	case ' ', '\t':
		for c := l.peek(); c == ' ' || c == '\t'; c = l.peek() {
			l.pos++
		}
		return l.token(TokenWhitespace, start)
	case '\r':
		l.pos++
		if l.peek() == '\n' {
			l.pos++
		}
		return l.token(TokenLineBreak, start)
	case '\n':
		l.pos++
		return l.token(TokenLineBreak, start)
	case '@':
		l.pos++
		l.scanLetters()
		return l.token(TokenType, start)
	case '\\':
		l.pos++
		if l.pos < len(l.input) {
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			if unicode.IsLetter(r) || r == '@' {
				l.scanLetters()
			} else {
				l.pos += size
			}
		}
		return l.token(TokenCommandName, start)
	}

	for l.pos < len(l.input) && !isWordDelimiter(l.peek()) {
		l.pos++
	}
	return l.token(TokenWord, start)
}

func (l *Lexer) scanLetters() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsLetter(r) && r != '@' {
			return
		}
		l.pos += size
	}
}

func isWordDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '{', '}', '(', ')', ',', '#', '"', '=', '@', '\\':
		return true
	}
	return false
}
