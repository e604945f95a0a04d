// Package parser provides an error-tolerant, lossless parser for LaTeX source.
//
// # Overview
//
// Parsing happens in two steps. The lexer splits the input into tokens and
// classifies every command name; the parser arranges the tokens into a
// concrete syntax tree. Every byte of the input ends up in exactly one leaf,
// so concatenating the leaves reproduces the source:
//
//	root := parser.Parse(text)
//	root.Text() == text // always true
//
// # Command Classification
//
// A command name is looked up in a static table first (\begin, \section,
// \cite, \usepackage, ...) and then in the sets of a SyntaxConfig, which
// carries user-declared citation and label commands:
//
//	config := parser.DefaultSyntaxConfig()
//	config.CitationCommands.Add("mycite")
//	root := parser.Parse(text, parser.WithConfig(config))
//
// The parser dispatches on the resulting CommandKind, never on the raw
// command text.
//
// # Context
//
// Some constructs change how their arguments are parsed. The rules pass a
// Context value down the call chain:
//
//	type Context struct {
//	    AllowEnvironment bool // \begin opens an Environment node
//	    AllowComma       bool // commas continue a Text node
//	}
//
// Key/value values are parsed without commas, and the begin/end code of
// \newenvironment is parsed without environments. The body of \newcommand
// re-enables environments even when the surrounding context disabled them.
//
// # Error Recovery
//
// Parse never fails. A closing delimiter that no group is waiting for is
// wrapped in an Error node; a missing closer ends the node early:
//
//	Root
//	  Error ERROR: unexpected }
//	  CurlyGroup
//	    Token { '{'
//	    Text
//	      Token Word 'unterminated'
//
// # Verbatim
//
// The lexer turns the argument of \verb and the body of verbatim
// environments (SyntaxConfig.VerbatimEnvironments) into single Verbatim
// tokens, so their content is never parsed.
package parser
