package parser

import (
	"strings"
	"testing"
)

type tokenWant struct {
	kind    TokenKind
	literal string
}

func checkTokens(t *testing.T, input string, want []tokenWant) {
	t.Helper()
	got := Tokenize(input, nil)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) returned %d tokens, want %d: %v", input, len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Literal != w.literal {
			t.Errorf("token %d = %s %q, want %s %q", i, got[i].Kind, got[i].Literal, w.kind, w.literal)
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	checkTokens(t, "{}[](),=|", []tokenWant{
		{TokenLCurly, "{"},
		{TokenRCurly, "}"},
		{TokenLBrack, "["},
		{TokenRBrack, "]"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenComma, ","},
		{TokenEq, "="},
		{TokenPipe, "|"},
	})
}

func TestLexerWordsAndTrivia(t *testing.T) {
	checkTokens(t, "foo, bar.\t% note\r\nbaz", []tokenWant{
		{TokenWord, "foo"},
		{TokenComma, ","},
		{TokenWhitespace, " "},
		{TokenWord, "bar."},
		{TokenWhitespace, "\t"},
		{TokenLineComment, "% note"},
		{TokenLineBreak, "\r\n"},
		{TokenWord, "baz"},
	})
}

func TestLexerDollar(t *testing.T) {
	checkTokens(t, "$$x$", []tokenWant{
		{TokenDollar, "$$"},
		{TokenWord, "x"},
		{TokenDollar, "$"},
	})
}

func TestLexerCommandNames(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`\section`, `\section`},
		{`\section*`, `\section*`},
		{`\@ifnextchar`, `\@ifnextchar`},
		{`\größe`, `\größe`},
		{`\\`, `\\`},
		{`\%`, `\%`},
		{`\[`, `\[`},
		{`\`, `\`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input, nil)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1: %v", len(tokens), tokens)
			}
			if tokens[0].Kind != TokenCommandName {
				t.Errorf("kind = %s, want %s", tokens[0].Kind, TokenCommandName)
			}
			if tokens[0].Literal != tt.literal {
				t.Errorf("literal = %q, want %q", tokens[0].Literal, tt.literal)
			}
		})
	}
}

func TestLexerCommandClassification(t *testing.T) {
	tests := []struct {
		input string
		kind  CommandKind
		level SectionLevel
	}{
		{`\begin`, CommandBeginEnvironment, 0},
		{`\end`, CommandEndEnvironment, 0},
		{`\chapter*`, CommandSection, LevelChapter},
		{`\subsection`, CommandSection, LevelSubsection},
		{`\cite`, CommandCitation, 0},
		{`\parencite`, CommandCitation, 0},
		{`\usepackage`, CommandPackageInclude, 0},
		{`\label`, CommandLabelDefinition, 0},
		{`\cref`, CommandLabelReference, 0},
		{`\crefrange`, CommandLabelReferenceRange, 0},
		{`\newcommand*`, CommandNewCommandDefinition, 0},
		{`\newtheorem`, CommandTheoremDefinitionAmsThm, 0},
		{`\usetikzlibrary`, CommandTikzLibraryImport, 0},
		{`\iffalse`, CommandBeginBlockComment, 0},
		{`\foo`, CommandGeneric, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := Tokenize(tt.input, nil)[0]
			if tok.Command != tt.kind {
				t.Errorf("command = %s, want %s", tok.Command, tt.kind)
			}
			if tok.Level != tt.level {
				t.Errorf("level = %d, want %d", tok.Level, tt.level)
			}
		})
	}
}

func TestLexerConfiguredCommands(t *testing.T) {
	config := DefaultSyntaxConfig()
	config.CitationCommands.Add("mycite")
	config.LabelReferenceCommands.Add("myref")

	tokens := Tokenize(`\mycite\myref\other`, config)
	want := []CommandKind{CommandCitation, CommandLabelReference, CommandGeneric}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, kind := range want {
		if tokens[i].Command != kind {
			t.Errorf("token %d command = %s, want %s", i, tokens[i].Command, kind)
		}
	}

	if kind, _ := Classify("mycite", nil); kind != CommandGeneric {
		t.Errorf("Classify without config = %s, want %s", kind, CommandGeneric)
	}
}

func TestLexerVerb(t *testing.T) {
	checkTokens(t, `\verb|a{b|c`, []tokenWant{
		{TokenCommandName, `\verb`},
		{TokenVerbatim, "|a{b|"},
		{TokenWord, "c"},
	})
	checkTokens(t, "\\verb+x\ny", []tokenWant{
		{TokenCommandName, `\verb`},
		{TokenVerbatim, "+x"},
		{TokenLineBreak, "\n"},
		{TokenWord, "y"},
	})
}

func TestLexerVerbatimEnvironment(t *testing.T) {
	checkTokens(t, `\begin{verbatim}\foo{ %\end{verbatim}`, []tokenWant{
		{TokenCommandName, `\begin`},
		{TokenLCurly, "{"},
		{TokenWord, "verbatim"},
		{TokenRCurly, "}"},
		{TokenVerbatim, `\foo{ %`},
		{TokenCommandName, `\end`},
		{TokenLCurly, "{"},
		{TokenWord, "verbatim"},
		{TokenRCurly, "}"},
	})
}

func TestLexerCoversInput(t *testing.T) {
	inputs := []string{
		"",
		`\`,
		"}}}{{{",
		`\begin{lstlisting}[language=Go] x`,
		"\\documentclass{article}\n\\begin{document}\nHällo $x^2$ % done\n\\end{document}",
		"\\verb",
		"\\verb\n",
	}

	for _, input := range inputs {
		var sb strings.Builder
		offset := 0
		for _, tok := range Tokenize(input, nil) {
			if tok.Span.Start != offset {
				t.Errorf("%q: token %v starts at %d, want %d", input, tok, tok.Span.Start, offset)
			}
			offset = tok.Span.End
			sb.WriteString(tok.Literal)
		}
		if sb.String() != input {
			t.Errorf("tokens of %q concatenate to %q", input, sb.String())
		}
	}
}
