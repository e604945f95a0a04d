package latex

import (
	"testing"

	"github.com/dhamidi/texlyzer/latex/parser"
)

func first(t *testing.T, root *parser.Node, kind parser.NodeKind) *parser.Node {
	t.Helper()
	nodes := root.Descendants(kind)
	if len(nodes) == 0 {
		t.Fatalf("no %s node in\n%s", kind, root)
	}
	return nodes[0]
}

func TestContent(t *testing.T) {
	tests := []struct {
		input string
		kind  parser.NodeKind
		want  string
	}{
		{`\section{ Intro % c` + "\n" + `duction }`, parser.KindCurlyGroup, "Intro \nduction"},
		{`\foo[ opt ]`, parser.KindMixedGroup, "opt"},
		{`\section{unterminated`, parser.KindCurlyGroup, "unterminated"},
		{`$ x^2 $`, parser.KindFormula, "x^2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := first(t, parser.Parse(tt.input), tt.kind)
			if got := Content(node); got != tt.want {
				t.Errorf("Content() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDelimiters(t *testing.T) {
	group := first(t, parser.Parse(`\section{a`), parser.KindCurlyGroup)
	if LeftDelimiter(group) == nil {
		t.Errorf("LeftDelimiter() = nil")
	}
	if RightDelimiter(group) != nil {
		t.Errorf("RightDelimiter() of an unterminated group should be nil")
	}
	if LeftDelimiter(nil) != nil || RightDelimiter(nil) != nil || Content(nil) != "" {
		t.Errorf("nil node should yield nothing")
	}
}

func TestKeyText(t *testing.T) {
	root := parser.Parse(`\label{ foo   bar }`)
	def, ok := AsLabelDefinition(first(t, root, parser.KindLabelDefinition))
	if !ok {
		t.Fatalf("AsLabelDefinition failed")
	}
	key, ok := def.Name()
	if !ok {
		t.Fatalf("label has no name")
	}
	if got := key.Text(); got != "foo bar" {
		t.Errorf("Text() = %q, want %q", got, "foo bar")
	}
	if got := key.Span(); got.Start != 8 || got.End != 17 {
		t.Errorf("Span() = %s, want 8..17", got)
	}
	if key.Text() != key.Text() {
		t.Errorf("Text() is not idempotent")
	}
}

func TestCitationKeys(t *testing.T) {
	citation, ok := AsCitation(first(t, parser.Parse(`\cite[p. 1]{foo, bar}`), parser.KindCitation))
	if !ok {
		t.Fatalf("AsCitation failed")
	}
	keys := citation.Keys()
	if len(keys) != 2 || keys[0].Text() != "foo" || keys[1].Text() != "bar" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestEnvironmentName(t *testing.T) {
	env, ok := AsEnvironment(first(t, parser.Parse(`\begin{itemize}\end{itemize}`), parser.KindEnvironment))
	if !ok {
		t.Fatalf("AsEnvironment failed")
	}
	name, ok := env.Name()
	if !ok || name.Text() != "itemize" {
		t.Errorf("Name() = %q, %v", name.Text(), ok)
	}
	endName, ok := BeginName(env.End())
	if !ok || endName.Text() != "itemize" {
		t.Errorf("end name = %q, %v", endName.Text(), ok)
	}

	if _, ok := AsEnvironment(nil); ok {
		t.Errorf("AsEnvironment(nil) should fail")
	}
	if _, ok := (Environment{}).Name(); ok {
		t.Errorf("zero Environment should have no name")
	}
}

func TestSectionTitle(t *testing.T) {
	section, ok := AsSection(first(t, parser.Parse(`\subsection[S]{foo,bar}`), parser.KindSubsection))
	if !ok {
		t.Fatalf("AsSection failed")
	}
	if got := section.Title(); got != "foo,bar" {
		t.Errorf("Title() = %q", got)
	}
	if got := section.ShortTitle(); got != "S" {
		t.Errorf("ShortTitle() = %q", got)
	}
	if got := section.Label(); got != "Subsection" {
		t.Errorf("Label() = %q", got)
	}
}

func TestIncludePaths(t *testing.T) {
	include, ok := AsInclude(first(t, parser.Parse(`\usepackage[margin=1in]{geometry, amsmath}`), parser.KindPackageInclude))
	if !ok {
		t.Fatalf("AsInclude failed")
	}
	paths := include.Paths()
	if len(paths) != 2 || paths[0].Text() != "geometry" || paths[1].Text() != "amsmath" {
		t.Errorf("Paths() = %v", paths)
	}
	if v, ok := Lookup(include.Options(), "margin"); !ok || v != "1in" {
		t.Errorf("Lookup(margin) = %q, %v", v, ok)
	}
}

func TestCommandDefinitionName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\newcommand{\foo}{bar}`, `\foo`},
		{`\newcommand\baz[1]{#1}`, `\baz`},
		{`\DeclareMathOperator{\Tr}{Tr}`, `\Tr`},
		{`\newcommand{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root := parser.Parse(tt.input)
			def, ok := AsCommandDefinition(root.Children[0])
			if !ok {
				t.Fatalf("AsCommandDefinition failed on %s", root.Children[0].Kind)
			}
			got := ""
			if tok := def.Name(); tok != nil {
				got = tok.Literal
			}
			if got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTheoremDefinition(t *testing.T) {
	tests := []struct {
		input       string
		names       []string
		description string
	}{
		{`\newtheorem{lemma}[theorem]{Lemma}`, []string{"lemma"}, "Lemma"},
		{`\declaretheorem[name=Theorem]{thm}`, []string{"thm"}, "Theorem"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			def, ok := AsTheoremDefinition(first(t, parser.Parse(tt.input), parser.KindTheoremDefinition))
			if !ok {
				t.Fatalf("AsTheoremDefinition failed")
			}
			names := def.Names()
			if len(names) != len(tt.names) {
				t.Fatalf("got %d names, want %d", len(names), len(tt.names))
			}
			for i, name := range names {
				if name.Text() != tt.names[i] {
					t.Errorf("name %d = %q, want %q", i, name.Text(), tt.names[i])
				}
			}
			if got := def.Description(); got != tt.description {
				t.Errorf("Description() = %q, want %q", got, tt.description)
			}
		})
	}
}

func TestColorSetDefinitionNames(t *testing.T) {
	def, ok := AsColorSetDefinition(first(t, parser.Parse(`\definecolorset{rgb}{}{}{red,1,0,0;green,0,1,0}`), parser.KindColorSetDefinition))
	if !ok {
		t.Fatalf("AsColorSetDefinition failed")
	}
	names := def.Names()
	if len(names) != 2 || names[0] != "red" || names[1] != "green" {
		t.Errorf("Names() = %v", names)
	}
}

func TestAcronymDefinition(t *testing.T) {
	def, ok := AsAcronymDefinition(first(t, parser.Parse(`\newacronym{lsp}{LSP}{Language Server Protocol}`), parser.KindAcronymDefinition))
	if !ok {
		t.Fatalf("AsAcronymDefinition failed")
	}
	if def.Short() != "LSP" || def.Long() != "Language Server Protocol" {
		t.Errorf("Short/Long = %q/%q", def.Short(), def.Long())
	}

	decl, ok := AsAcronymDefinition(first(t, parser.Parse(`\DeclareAcronym{cpu}{short=CPU, long=central processing unit}`), parser.KindAcronymDeclaration))
	if !ok {
		t.Fatalf("AsAcronymDefinition failed for declaration")
	}
	if decl.Short() != "CPU" || decl.Long() != "central processing unit" {
		t.Errorf("Short/Long = %q/%q", decl.Short(), decl.Long())
	}
}

func TestViewsOnErrorTrees(t *testing.T) {
	root := parser.Parse(`}\label{\cite{]`)
	for _, n := range root.Descendants(parser.KindLabelDefinition) {
		def, _ := AsLabelDefinition(n)
		_, _ = def.Name()
	}
	for _, n := range root.Descendants(parser.KindCitation) {
		citation, _ := AsCitation(n)
		_ = citation.Keys()
	}
}
