package parser

type Option func(*Parser)

// WithConfig sets the syntax configuration used to classify commands and
// detect verbatim environments.
func WithConfig(config *SyntaxConfig) Option {
	return func(p *Parser) {
		if config != nil {
			p.config = config
		}
	}
}

// Context is passed down by value: a rule that changes it only affects its
// own subtree.
type Context struct {
	AllowEnvironment bool
	AllowComma       bool
}

var defaultContext = Context{AllowEnvironment: true, AllowComma: true}

type Parser struct {
	config *SyntaxConfig
	tokens []Token
	pos    int
	// depth counts the open curly groups; block-like constructs only stop at
	// a closing brace when one of them can consume it.
	depth int
}

// Parse builds the syntax tree for text. It never fails: unexpected input
// is wrapped in Error nodes and the concatenated leaves always equal text.
func Parse(text string, opts ...Option) *Node {
	p := &Parser{config: DefaultSyntaxConfig()}
	for _, opt := range opts {
		opt(p)
	}
	p.tokens = Tokenize(text, p.config)
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

func (p *Parser) checkCommand(kind CommandKind) bool {
	tok := p.peek()
	return tok.Kind == TokenCommandName && tok.Command == kind
}

// eat moves the current token into n as a leaf.
func (p *Parser) eat(n *Node) {
	if p.pos >= len(p.tokens) {
		return
	}
	tok := p.tokens[p.pos]
	p.pos++
	n.AddChild(&Node{Kind: KindToken, Span: tok.Span, Token: &tok})
}

// expect eats the current token when it has the given kind. A missing
// closer is not an error: the node simply ends early.
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
	return &Node{
		Kind: kind,
		Span: Span{Start: start, End: start},
	}
}

func (p *Parser) finishNode(n *Node) *Node {
	if len(n.Children) > 0 {
		n.Span.Start = n.Children[0].Span.Start
		n.Span.End = n.Children[len(n.Children)-1].Span.End
	}
	return n
}

func (p *Parser) errorNode(msg string) *Node {
	tok := p.peek()
	node := p.startNode(KindError)
	node.Error = &Error{Message: msg, Got: &tok}
	p.eat(node)
	return p.finishNode(node)
}

// mustProgress returns a function that checks whether the parser advanced
// since it was created. Without progress the current token is wrapped in an
// Error node added to n, so loops over p.content always terminate.
func (p *Parser) mustProgress(n *Node) func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if !p.check(TokenEOF) {
				n.AddChild(p.errorNode("unexpected token"))
			}
			return false
		}
		return true
	}
}

// closesGroup reports whether the current token is a closing brace that an
// enclosing group is waiting for.
func (p *Parser) closesGroup() bool {
	return p.depth > 0 && p.check(TokenRCurly)
}

func (p *Parser) parseRoot() *Node {
	root := p.startNode(KindRoot)
	root.Span.Start = 0
	for !p.check(TokenEOF) {
		progress := p.mustProgress(root)
		p.content(root, defaultContext)
		progress()
	}
	return p.finishNode(root)
}

func (p *Parser) content(parent *Node, ctx Context) {
	tok := p.peek()
	switch tok.Kind {
	case TokenEOF:
		return
	case TokenLineBreak, TokenWhitespace, TokenLineComment, TokenEq, TokenVerbatim:
		p.eat(parent)
	case TokenLCurly:
		if ctx.AllowEnvironment {
			parent.AddChild(p.curlyGroup())
		} else {
			parent.AddChild(p.curlyGroupWithoutEnvironments())
		}
	case TokenLBrack, TokenLParen:
		parent.AddChild(p.mixedGroup(ctx))
	case TokenRCurly, TokenRBrack, TokenRParen:
		parent.AddChild(p.errorNode("unexpected " + tok.Kind.String()))
	case TokenWord, TokenPipe, TokenComma:
		parent.AddChild(p.text(ctx))
	case TokenDollar:
		parent.AddChild(p.formula())
	case TokenCommandName:
		parent.AddChild(p.command(ctx))
	default:
		parent.AddChild(p.errorNode("unexpected token"))
	}
}

func (p *Parser) command(ctx Context) *Node {
	tok := p.peek()
	switch tok.Command {
	case CommandBeginEnvironment:
		if ctx.AllowEnvironment {
			return p.environment()
		}
		return p.genericCommand(ctx)
	case CommandBeginEquation:
		return p.equation()
	case CommandSection:
		return p.section(tok.Level)
	case CommandEnumItem:
		return p.enumItem()
	case CommandCaption:
		return p.caption()
	case CommandCitation:
		return p.citation()
	case CommandPackageInclude:
		return p.include(KindPackageInclude, true, true)
	case CommandClassInclude:
		return p.include(KindClassInclude, true, true)
	case CommandLatexInclude:
		return p.include(KindLatexInclude, false, false)
	case CommandBiblatexInclude:
		return p.include(KindBiblatexInclude, true, false)
	case CommandBibtexInclude:
		return p.include(KindBibtexInclude, false, true)
	case CommandGraphicsInclude:
		return p.include(KindGraphicsInclude, true, false)
	case CommandSvgInclude:
		return p.include(KindSvgInclude, true, false)
	case CommandInkscapeInclude:
		return p.include(KindInkscapeInclude, true, false)
	case CommandVerbatimInclude:
		return p.include(KindVerbatimInclude, true, false)
	case CommandImport:
		return p.importCommand()
	case CommandLabelDefinition:
		return p.labelDefinition()
	case CommandLabelReference:
		return p.labelReference()
	case CommandLabelReferenceRange:
		return p.labelReferenceRange()
	case CommandLabelNumber:
		return p.labelNumber()
	case CommandOldCommandDefinition:
		return p.oldCommandDefinition()
	case CommandNewCommandDefinition:
		return p.newCommandDefinition(KindNewCommandDefinition)
	case CommandMathOperator:
		return p.newCommandDefinition(KindMathOperator)
	case CommandGlossaryEntryDefinition:
		return p.glossaryEntryDefinition()
	case CommandGlossaryEntryReference:
		return p.entryReference(KindGlossaryEntryReference)
	case CommandAcronymDefinition:
		return p.acronymDefinition()
	case CommandAcronymDeclaration:
		return p.acronymDeclaration()
	case CommandAcronymReference:
		return p.entryReference(KindAcronymReference)
	case CommandTheoremDefinitionAmsThm:
		return p.theoremDefinitionAmsThm()
	case CommandTheoremDefinitionThmTools:
		return p.theoremDefinitionThmTools()
	case CommandColorReference:
		return p.colorReference()
	case CommandColorDefinition:
		return p.colorDefinition()
	case CommandColorSetDefinition:
		return p.colorSetDefinition()
	case CommandTikzLibraryImport:
		return p.tikzLibraryImport()
	case CommandEnvironmentDefinition:
		return p.environmentDefinition()
	case CommandGraphicsPath:
		return p.graphicsPath()
	case CommandBeginBlockComment:
		return p.blockComment()
	case CommandVerbatimBlock:
		return p.verbatimBlock()
	case CommandBibItem:
		return p.bibItem()
	}
	return p.genericCommand(ctx)
}

func (p *Parser) text(ctx Context) *Node {
	node := p.startNode(KindText)
	p.eat(node)
	for {
		switch p.peek().Kind {
		case TokenWhitespace, TokenLineBreak, TokenLineComment, TokenWord, TokenPipe:
			p.eat(node)
			continue
		case TokenComma:
			if ctx.AllowComma {
				p.eat(node)
				continue
			}
		}
		break
	}
	return p.finishNode(node)
}

func (p *Parser) curlyGroup() *Node {
	node := p.startNode(KindCurlyGroup)
	p.eat(node)
	p.depth++
	for !p.match(TokenEOF, TokenRCurly) && !p.checkCommand(CommandEndEnvironment) {
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	p.depth--
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) curlyGroupWithoutEnvironments() *Node {
	node := p.startNode(KindCurlyGroup)
	p.eat(node)
	p.depth++
	ctx := Context{AllowEnvironment: false, AllowComma: true}
	for !p.match(TokenEOF, TokenRCurly) {
		progress := p.mustProgress(node)
		p.content(node, ctx)
		progress()
	}
	p.depth--
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) mixedGroup(ctx Context) *Node {
	node := p.startNode(KindMixedGroup)
	p.eat(node)
	for !p.match(TokenEOF, TokenRBrack, TokenRParen, TokenRCurly) {
		if ctx.AllowEnvironment && p.checkCommand(CommandEndEnvironment) {
			break
		}
		progress := p.mustProgress(node)
		p.content(node, ctx)
		progress()
	}
	if !p.expect(node, TokenRBrack) {
		p.expect(node, TokenRParen)
	}
	return p.finishNode(node)
}

func (p *Parser) brackGroup() *Node {
	node := p.startNode(KindBrackGroup)
	p.eat(node)
	for !p.match(TokenEOF, TokenRBrack, TokenRCurly) && !p.checkCommand(CommandEndEnvironment) {
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	p.expect(node, TokenRBrack)
	return p.finishNode(node)
}

func (p *Parser) brackGroupWord() *Node {
	node := p.startNode(KindBrackGroupWord)
	p.eat(node)
	p.trivia(node)
	if p.match(TokenWord, TokenPipe) {
		node.AddChild(p.key())
	}
	p.expect(node, TokenRBrack)
	return p.finishNode(node)
}

func (p *Parser) curlyGroupWord() *Node {
	node := p.startNode(KindCurlyGroupWord)
	p.eat(node)
	p.trivia(node)
	switch p.peek().Kind {
	case TokenWord, TokenPipe:
		node.AddChild(p.key())
	case TokenCommandName:
		if !p.checkCommand(CommandEndEnvironment) {
			p.eat(node)
		}
	}
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) curlyGroupWordList() *Node {
	node := p.startNode(KindCurlyGroupWordList)
	p.eat(node)
	for {
		switch p.peek().Kind {
		case TokenWhitespace, TokenLineBreak, TokenLineComment, TokenComma:
			p.eat(node)
			continue
		case TokenWord, TokenPipe:
			node.AddChild(p.key())
			continue
		}
		break
	}
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) curlyGroupCommand() *Node {
	node := p.startNode(KindCurlyGroupCommand)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenCommandName) {
		p.eat(node)
	}
	p.trivia(node)
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) curlyGroupKeyValue() *Node {
	node := p.startNode(KindCurlyGroupKeyValue)
	p.eat(node)
	node.AddChild(p.keyValueBody())
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) brackGroupKeyValue() *Node {
	node := p.startNode(KindBrackGroupKeyValue)
	p.eat(node)
	node.AddChild(p.keyValueBody())
	p.expect(node, TokenRBrack)
	return p.finishNode(node)
}

func (p *Parser) key() *Node {
	node := p.startNode(KindKey)
	p.eat(node)
	for p.match(TokenWord, TokenWhitespace, TokenPipe, TokenLineComment) {
		p.eat(node)
	}
	return p.finishNode(node)
}

func (p *Parser) keyValueBody() *Node {
	node := p.startNode(KindKeyValueBody)
	for {
		switch p.peek().Kind {
		case TokenWhitespace, TokenLineBreak, TokenLineComment:
			p.eat(node)
			continue
		case TokenWord, TokenPipe:
			node.AddChild(p.keyValuePair())
			p.trivia(node)
			if p.expect(node, TokenComma) {
				continue
			}
		}
		break
	}
	return p.finishNode(node)
}

func (p *Parser) keyValuePair() *Node {
	node := p.startNode(KindKeyValuePair)
	node.AddChild(p.key())
	if p.expect(node, TokenEq) {
		p.trivia(node)
		if !p.match(TokenEOF, TokenComma, TokenRBrack, TokenRCurly) {
			node.AddChild(p.value())
		}
	}
	return p.finishNode(node)
}

func (p *Parser) value() *Node {
	node := p.startNode(KindValue)
	ctx := Context{AllowEnvironment: true, AllowComma: false}
	for !p.match(TokenEOF, TokenComma, TokenRBrack, TokenRCurly) {
		progress := p.mustProgress(node)
		p.content(node, ctx)
		progress()
	}
	return p.finishNode(node)
}

func isPathToken(tok Token) bool {
	switch tok.Kind {
	case TokenWord, TokenEq, TokenPipe, TokenLParen, TokenRParen, TokenLBrack, TokenRBrack, TokenWhitespace:
		return true
	case TokenCommandName:
		return tok.Command == CommandGeneric
	}
	return false
}

func (p *Parser) path(allowComma bool) *Node {
	node := p.startNode(KindPath)
	p.eat(node)
	for isPathToken(p.peek()) || (allowComma && p.check(TokenComma)) {
		p.eat(node)
	}
	return p.finishNode(node)
}

func (p *Parser) curlyGroupPath() *Node {
	node := p.startNode(KindCurlyGroupPath)
	p.eat(node)
	p.trivia(node)
	if isPathToken(p.peek()) || p.check(TokenComma) {
		node.AddChild(p.path(true))
	}
	p.trivia(node)
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) curlyGroupPathList() *Node {
	node := p.startNode(KindCurlyGroupPathList)
	p.eat(node)
	for {
		tok := p.peek()
		switch {
		case tok.Kind.IsTrivia() || tok.Kind == TokenComma:
			p.eat(node)
			continue
		case isPathToken(tok):
			node.AddChild(p.path(false))
			continue
		}
		break
	}
	p.expect(node, TokenRCurly)
	return p.finishNode(node)
}

func (p *Parser) formula() *Node {
	node := p.startNode(KindFormula)
	p.eat(node)
	for !p.match(TokenEOF, TokenRCurly, TokenDollar) && !p.checkCommand(CommandEndEnvironment) {
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	p.expect(node, TokenDollar)
	return p.finishNode(node)
}

func (p *Parser) equation() *Node {
	node := p.startNode(KindEquation)
	p.eat(node)
	for !p.match(TokenEOF, TokenRCurly) &&
		!p.checkCommand(CommandEndEnvironment) && !p.checkCommand(CommandEndEquation) {
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	if p.checkCommand(CommandEndEquation) {
		p.eat(node)
	}
	return p.finishNode(node)
}

func (p *Parser) genericCommand(ctx Context) *Node {
	node := p.startNode(KindGenericCommand)
	p.eat(node)
	for {
		switch p.peek().Kind {
		case TokenWhitespace, TokenLineBreak, TokenLineComment:
			p.eat(node)
			continue
		case TokenLCurly:
			if ctx.AllowEnvironment {
				node.AddChild(p.curlyGroup())
			} else {
				node.AddChild(p.curlyGroupWithoutEnvironments())
			}
			continue
		case TokenLBrack, TokenLParen:
			node.AddChild(p.mixedGroup(ctx))
			continue
		}
		break
	}
	return p.finishNode(node)
}

func (p *Parser) environment() *Node {
	node := p.startNode(KindEnvironment)
	node.AddChild(p.begin())
	for !p.check(TokenEOF) && !p.checkCommand(CommandEndEnvironment) && !p.closesGroup() {
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	if p.checkCommand(CommandEndEnvironment) {
		node.AddChild(p.end())
	}
	return p.finishNode(node)
}

func (p *Parser) begin() *Node {
	node := p.startNode(KindBegin)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
	}
	return p.finishNode(node)
}

func (p *Parser) end() *Node {
	node := p.startNode(KindEnd)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}

var sectionKinds = map[SectionLevel]NodeKind{
	LevelPart:          KindPart,
	LevelChapter:       KindChapter,
	LevelSection:       KindSection,
	LevelSubsection:    KindSubsection,
	LevelSubsubsection: KindSubsubsection,
	LevelParagraph:     KindParagraph,
	LevelSubparagraph:  KindSubparagraph,
}

func (p *Parser) section(level SectionLevel) *Node {
	node := p.startNode(sectionKinds[level])
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
	}
	for !p.check(TokenEOF) && !p.checkCommand(CommandEndEnvironment) && !p.closesGroup() {
		if tok := p.peek(); tok.Kind == TokenCommandName && tok.Command == CommandSection && tok.Level <= level {
			break
		}
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	return p.finishNode(node)
}

func (p *Parser) enumItem() *Node {
	node := p.startNode(KindEnumItem)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
	}
	for !p.check(TokenEOF) && !p.checkCommand(CommandEndEnvironment) &&
		!p.checkCommand(CommandEnumItem) && !p.closesGroup() {
		progress := p.mustProgress(node)
		p.content(node, defaultContext)
		progress()
	}
	return p.finishNode(node)
}

func (p *Parser) caption() *Node {
	node := p.startNode(KindCaption)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
	}
	return p.finishNode(node)
}

func (p *Parser) citation() *Node {
	node := p.startNode(KindCitation)
	p.eat(node)
	p.trivia(node)
	for i := 0; i < 2 && p.check(TokenLBrack); i++ {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWordList())
	}
	return p.finishNode(node)
}

func (p *Parser) include(kind NodeKind, options, list bool) *Node {
	node := p.startNode(kind)
	p.eat(node)
	p.trivia(node)
	if options && p.check(TokenLBrack) {
		node.AddChild(p.brackGroupKeyValue())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		if list {
			node.AddChild(p.curlyGroupPathList())
		} else {
			node.AddChild(p.curlyGroupPath())
		}
	}
	return p.finishNode(node)
}

func (p *Parser) importCommand() *Node {
	node := p.startNode(KindImport)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}

func (p *Parser) labelDefinition() *Node {
	node := p.startNode(KindLabelDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}

func (p *Parser) labelReference() *Node {
	node := p.startNode(KindLabelReference)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWordList())
	}
	return p.finishNode(node)
}

func (p *Parser) labelReferenceRange() *Node {
	node := p.startNode(KindLabelReferenceRange)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}

func (p *Parser) labelNumber() *Node {
	node := p.startNode(KindLabelNumber)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
	}
	return p.finishNode(node)
}

func (p *Parser) oldCommandDefinition() *Node {
	node := p.startNode(KindOldCommandDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenCommandName) {
		p.eat(node)
	}
	return p.finishNode(node)
}

// newCommandDefinition parses \newcommand-like commands. The body is parsed
// with environments enabled, whatever the surrounding context.
func (p *Parser) newCommandDefinition(kind NodeKind) *Node {
	node := p.startNode(kind)
	p.eat(node)
	p.trivia(node)
	switch {
	case p.check(TokenLCurly):
		node.AddChild(p.curlyGroupCommand())
	case p.check(TokenCommandName):
		p.eat(node)
	}
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupWord())
		p.trivia(node)
		if p.check(TokenLBrack) {
			node.AddChild(p.brackGroup())
			p.trivia(node)
		}
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
	}
	return p.finishNode(node)
}

func (p *Parser) glossaryEntryDefinition() *Node {
	node := p.startNode(KindGlossaryEntryDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupKeyValue())
	}
	return p.finishNode(node)
}

func (p *Parser) entryReference(kind NodeKind) *Node {
	node := p.startNode(kind)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupKeyValue())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}

func (p *Parser) acronymDefinition() *Node {
	node := p.startNode(KindAcronymDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupKeyValue())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	for i := 0; i < 2 && p.check(TokenLCurly); i++ {
		node.AddChild(p.curlyGroup())
		p.trivia(node)
	}
	return p.finishNode(node)
}

func (p *Parser) acronymDeclaration() *Node {
	node := p.startNode(KindAcronymDeclaration)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupKeyValue())
	}
	return p.finishNode(node)
}

func (p *Parser) theoremDefinitionAmsThm() *Node {
	node := p.startNode(KindTheoremDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
		p.trivia(node)
	}
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupWord())
	}
	return p.finishNode(node)
}

func (p *Parser) theoremDefinitionThmTools() *Node {
	node := p.startNode(KindTheoremDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupKeyValue())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWordList())
		p.trivia(node)
	}
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupKeyValue())
	}
	return p.finishNode(node)
}

func (p *Parser) colorReference() *Node {
	node := p.startNode(KindColorReference)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}

func (p *Parser) colorDefinition() *Node {
	node := p.startNode(KindColorDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
	}
	return p.finishNode(node)
}

func (p *Parser) colorSetDefinition() *Node {
	node := p.startNode(KindColorSetDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWordList())
		p.trivia(node)
	}
	for i := 0; i < 2 && p.check(TokenLCurly); i++ {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroup())
	}
	return p.finishNode(node)
}

func (p *Parser) tikzLibraryImport() *Node {
	node := p.startNode(KindTikzLibraryImport)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWordList())
	}
	return p.finishNode(node)
}

// environmentDefinition parses \newenvironment. Its begin and end code
// contain unbalanced \begin and \end, so they are parsed without
// environments.
func (p *Parser) environmentDefinition() *Node {
	node := p.startNode(KindEnvironmentDefinition)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
		p.trivia(node)
	}
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroupWord())
		p.trivia(node)
		if p.check(TokenLBrack) {
			node.AddChild(p.brackGroup())
			p.trivia(node)
		}
	}
	for i := 0; i < 2 && p.check(TokenLCurly); i++ {
		node.AddChild(p.curlyGroupWithoutEnvironments())
		p.trivia(node)
	}
	return p.finishNode(node)
}

func (p *Parser) graphicsPath() *Node {
	node := p.startNode(KindGraphicsPath)
	p.eat(node)
	p.trivia(node)
	if !p.check(TokenLCurly) {
		return p.finishNode(node)
	}
	group := p.startNode(KindCurlyGroup)
	p.eat(group)
	for {
		p.trivia(group)
		if !p.check(TokenLCurly) {
			break
		}
		group.AddChild(p.curlyGroupPath())
	}
	p.expect(group, TokenRCurly)
	node.AddChild(p.finishNode(group))
	return p.finishNode(node)
}

// blockComment consumes everything up to the matching \fi. Nested \iffalse
// blocks produce nested BlockComment nodes.
func (p *Parser) blockComment() *Node {
	node := p.startNode(KindBlockComment)
	p.eat(node)
	for !p.check(TokenEOF) {
		if p.checkCommand(CommandBeginBlockComment) {
			node.AddChild(p.blockComment())
			continue
		}
		if p.checkCommand(CommandEndBlockComment) {
			p.eat(node)
			break
		}
		p.eat(node)
	}
	return p.finishNode(node)
}

func (p *Parser) verbatimBlock() *Node {
	node := p.startNode(KindGenericCommand)
	p.eat(node)
	p.expect(node, TokenVerbatim)
	return p.finishNode(node)
}

func (p *Parser) bibItem() *Node {
	node := p.startNode(KindBibItem)
	p.eat(node)
	p.trivia(node)
	if p.check(TokenLBrack) {
		node.AddChild(p.brackGroup())
		p.trivia(node)
	}
	if p.check(TokenLCurly) {
		node.AddChild(p.curlyGroupWord())
	}
	return p.finishNode(node)
}
