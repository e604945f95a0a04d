package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input   string
	pos     int
	config  *SyntaxConfig
	pending []Token
}

func NewLexer(input string, config *SyntaxConfig) *Lexer {
	if config == nil {
		config = DefaultSyntaxConfig()
	}
	return &Lexer{
		input:  input,
		config: config,
	}
}

// Tokenize splits text into tokens. The result covers every byte of the
// input exactly once and does not include an EOF token.
func Tokenize(text string, config *SyntaxConfig) []Token {
	l := NewLexer(text, config)
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

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: l.pos},
		Literal: l.input[start:l.pos],
	}
}

func (l *Lexer) NextToken() Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	start := l.pos
	if l.atEOF() {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()
	switch ch {
	case ' ', '\t':
		return l.scanWhitespace(start)
	case '\r', '\n':
		return l.scanLineBreak(start)
	case '%':
		return l.scanLineComment(start)
	case '{':
		l.pos++
		return l.token(TokenLCurly, start)
	case '}':
		l.pos++
		return l.token(TokenRCurly, start)
	case '[':
		l.pos++
		return l.token(TokenLBrack, start)
	case ']':
		l.pos++
		return l.token(TokenRBrack, start)
	case '(':
		l.pos++
		return l.token(TokenLParen, start)
	case ')':
		l.pos++
		return l.token(TokenRParen, start)
	case ',':
		l.pos++
		return l.token(TokenComma, start)
	case '=':
		l.pos++
		return l.token(TokenEq, start)
	case '|':
		l.pos++
		return l.token(TokenPipe, start)
	case '$':
		l.pos++
		if l.peek() == '$' {
			l.pos++
		}
		return l.token(TokenDollar, start)
	case '\\':
		return l.scanCommand(start)
	}
	return l.scanWord(start)
}

func (l *Lexer) scanWhitespace(start int) Token {
	for ch := l.peek(); ch == ' ' || ch == '\t'; ch = l.peek() {
		l.pos++
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineBreak(start int) Token {
	if l.peek() == '\r' && l.peekN(1) == '\n' {
		l.pos += 2
	} else {
		l.pos++
	}
	return l.token(TokenLineBreak, start)
}

func (l *Lexer) scanLineComment(start int) Token {
	for !l.atEOF() && l.peek() != '\n' && l.peek() != '\r' {
		l.pos++
	}
	return l.token(TokenLineComment, start)
}

func isWordDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '\\', '%', '{', '}', ',', '$', '[', ']', '(', ')', '=', '|':
		return true
	}
	return false
}

func (l *Lexer) scanWord(start int) Token {
	for !l.atEOF() && !isWordDelimiter(l.peek()) {
		l.pos++
	}
	return l.token(TokenWord, start)
}

func isCommandLetter(r rune) bool {
	return r == '@' || unicode.IsLetter(r)
}

func (l *Lexer) scanCommand(start int) Token {
	l.pos++ // backslash
	if l.atEOF() {
		return l.command(start)
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if !isCommandLetter(r) {
		l.pos += size
		return l.command(start)
	}

	for !l.atEOF() {
		r, size = utf8.DecodeRuneInString(l.input[l.pos:])
		if !isCommandLetter(r) {
			break
		}
		l.pos += size
	}
	if l.peek() == '*' {
		l.pos++
	}

	tok := l.command(start)
	switch tok.Command {
	case CommandVerbatimBlock:
		l.queueVerbatimArgument()
	case CommandBeginEnvironment:
		l.queueVerbatimEnvironment()
	}
	return tok
}

func (l *Lexer) command(start int) Token {
	tok := l.token(TokenCommandName, start)
	tok.Command, tok.Level = Classify(tok.CommandName(), l.config)
	return tok
}

// queueVerbatimArgument handles \verb|...|. The delimited argument becomes a
// single verbatim token ending at the closing delimiter or the end of the line.
func (l *Lexer) queueVerbatimArgument() {
	if l.atEOF() {
		return
	}
	delim, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if delim == '\n' || delim == '\r' {
		return
	}
	start := l.pos
	l.pos += size
	for !l.atEOF() {
		r, n := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == '\n' || r == '\r' {
			break
		}
		l.pos += n
		if r == delim {
			break
		}
	}
	l.pending = append(l.pending, l.token(TokenVerbatim, start))
}

// queueVerbatimEnvironment looks ahead after \begin. For a verbatim
// environment the name group is tokenized normally and the body up to the
// matching \end becomes one verbatim token.
func (l *Lexer) queueVerbatimEnvironment() {
	rest := l.input[l.pos:]
	if !strings.HasPrefix(rest, "{") {
		return
	}
	closing := strings.IndexByte(rest, '}')
	if closing < 0 {
		return
	}
	name := rest[1:closing]
	if name == "" || !l.config.VerbatimEnvironments.Has(name) {
		return
	}

	start := l.pos
	l.pending = append(l.pending,
		Token{Kind: TokenLCurly, Span: Span{start, start + 1}, Literal: "{"},
		Token{Kind: TokenWord, Span: Span{start + 1, start + closing}, Literal: name},
		Token{Kind: TokenRCurly, Span: Span{start + closing, start + closing + 1}, Literal: "}"},
	)
	l.pos = start + closing + 1

	bodyStart := l.pos
	end := strings.Index(l.input[bodyStart:], `\end{`+name+`}`)
	if end < 0 {
		l.pos = len(l.input)
	} else {
		l.pos = bodyStart + end
	}
	if l.pos > bodyStart {
		l.pending = append(l.pending, l.token(TokenVerbatim, bodyStart))
	}
}
