package parser

type Parser struct {
	tokens []Token
	pos    int
}

// Parse builds the syntax tree for a BibTeX database. It never fails and
// the concatenated leaves always equal text.
func Parse(text string) *Node {
	p := &Parser{tokens: Tokenize(text)}
	return p.parseRoot()
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		end := 0
		if n := len(p.tokens); n > 0 {
			end = p.tokens[n-1].Span.End
		}
		return Token{Kind: TokenEOF, Span: Span{Start: end, End: end}}
	}
	return p.tokens[p.pos]
}

// peekSignificant returns the first non-trivia token at or after the
// current position without consuming anything.
func (p *Parser) peekSignificant() Token {
	for i := p.pos; i < len(p.tokens); i++ {
		if !p.tokens[i].Kind.IsTrivia() {
			return p.tokens[i]
		}
	}
	return Token{Kind: TokenEOF}
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

func (p *Parser) eat(n *Node) {
	if p.pos >= len(p.tokens) {
		return
	}
	tok := p.tokens[p.pos]
	p.pos++
	n.AddChild(&Node{Kind: KindToken, Span: tok.Span, Token: &tok})
}

func (p *Parser) expect(n *Node, kind TokenKind) bool {
	if p.check(kind) {
		p.eat(n)
		return true
	}
	return false
}

func (p *Parser) trivia(n *Node) {
	for p.peek().Kind.IsTrivia() {
		p.eat(n)
	}
}

func (p *Parser) startNode(kind NodeKind) *Node {
	start := p.peek().Span.Start
	return &Node{Kind: kind, Span: Span{Start: start, End: start}}
}

func (p *Parser) finishNode(n *Node) *Node {
	if len(n.Children) > 0 {
		n.Span.Start = n.Children[0].Span.Start
		n.Span.End = n.Children[len(n.Children)-1].Span.End
	}
	return n
}

func (p *Parser) errorNode() *Node {
	node := p.startNode(KindError)
	p.eat(node)
	return p.finishNode(node)
}

func (p *Parser) parseRoot() *Node {
	root := p.startNode(KindRoot)
	root.Span.Start = 0
	for !p.check(TokenEOF) {
		if !p.check(TokenType) {
			root.AddChild(p.junk())
			continue
		}
		switch p.peek().TypeName() {
		case "preamble":
			root.AddChild(p.preamble())
		case "string":
			root.AddChild(p.stringDef())
		case "comment":
			root.AddChild(p.junk())
		default:
			root.AddChild(p.entry())
		}
	}
	return p.finishNode(root)
}

// junk consumes free text between entries. A leading @comment is part of
// the junk.
func (p *Parser) junk() *Node {
	node := p.startNode(KindJunk)
	p.eat(node)
	for !p.match(TokenEOF, TokenType) {
		p.eat(node)
	}
	return p.finishNode(node)
}

func (p *Parser) open(n *Node) (TokenKind, bool) {
	p.trivia(n)
	switch {
	case p.expect(n, TokenLCurly):
		return TokenRCurly, true
	case p.expect(n, TokenLParen):
		return TokenRParen, true
	}
	return TokenEOF, false
}

func (p *Parser) preamble() *Node {
	node := p.startNode(KindPreamble)
	p.eat(node)
	closer, ok := p.open(node)
	if !ok {
		return p.finishNode(node)
	}
	p.trivia(node)
	if v := p.value(); v != nil {
		node.AddChild(v)
	}
	p.trivia(node)
	p.expect(node, closer)
	return p.finishNode(node)
}

func (p *Parser) stringDef() *Node {
	node := p.startNode(KindStringDef)
	p.eat(node)
	closer, ok := p.open(node)
	if !ok {
		return p.finishNode(node)
	}
	p.trivia(node)
	if p.check(TokenWord) {
		p.eat(node)
		p.trivia(node)
	}
	if p.expect(node, TokenEq) {
		p.trivia(node)
		if v := p.value(); v != nil {
			node.AddChild(v)
		}
		p.trivia(node)
	}
	p.expect(node, closer)
	return p.finishNode(node)
}

func (p *Parser) entry() *Node {
	node := p.startNode(KindEntry)
	p.eat(node)
	closer, ok := p.open(node)
	if !ok {
		return p.finishNode(node)
	}
	p.trivia(node)
	if p.check(TokenWord) {
		p.eat(node)
	}

	for {
		p.trivia(node)
		tok := p.peek()
		switch {
		case tok.Kind == TokenEOF, tok.Kind == TokenType:
			return p.finishNode(node)
		case tok.Kind == closer:
			p.eat(node)
			return p.finishNode(node)
		case tok.Kind == TokenComma:
			p.eat(node)
		case tok.Kind == TokenWord:
			node.AddChild(p.field())
		default:
			node.AddChild(p.errorNode())
		}
	}
}

func (p *Parser) field() *Node {
	node := p.startNode(KindField)
	p.eat(node)
	if p.peekSignificant().Kind != TokenEq {
		return p.finishNode(node)
	}
	p.trivia(node)
	p.eat(node)
	p.trivia(node)
	if v := p.value(); v != nil {
		node.AddChild(v)
	}
	return p.finishNode(node)
}

// value parses a single value or a chain joined by #. Trivia between the
// operands is attached to the Join node.
func (p *Parser) value() *Node {
	left := p.singleValue()
	if left == nil {
		return nil
	}
	if p.peekSignificant().Kind != TokenHash {
		return left
	}
	join := p.startNode(KindJoin)
	join.AddChild(left)
	p.trivia(join)
	p.eat(join)
	p.trivia(join)
	if right := p.value(); right != nil {
		join.AddChild(right)
	}
	return p.finishNode(join)
}

func (p *Parser) singleValue() *Node {
	switch p.peek().Kind {
	case TokenWord:
		node := p.startNode(KindLiteral)
		p.eat(node)
		return p.finishNode(node)
	case TokenCommandName:
		node := p.startNode(KindCommand)
		p.eat(node)
		return p.finishNode(node)
	case TokenLCurly:
		return p.curlyGroup()
	case TokenQuote:
		return p.quoteGroup()
	}
	return nil
}

func (p *Parser) curlyGroup() *Node {
	node := p.startNode(KindCurlyGroup)
	p.eat(node)
	for !p.match(TokenEOF, TokenRCurly) {
		if p.check(TokenLCurly) {
			node.AddChild(p.curlyGroup())
			continue
		}
		p.eat(node)
	}
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) quoteGroup() *Node {
	node := p.startNode(KindQuoteGroup)
	p.eat(node)
	for !p.match(TokenEOF, TokenQuote, TokenRCurly) {
		if p.check(TokenLCurly) {
			node.AddChild(p.curlyGroup())
			continue
		}
		p.eat(node)
	}
	p.expect(node, TokenQuote)
	return p.finishNode(node)
}
