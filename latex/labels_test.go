package latex

import (
	"testing"

	"github.com/dhamidi/texlyzer/latex/parser"
)

func TestRenderLabel(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		aux    string
		kind   LabelKind
		header string
	}{
		{
			name:   "section with number",
			input:  `\section{Introduction}\label{sec:intro}`,
			aux:    `\newlabel{sec:intro}{{1}{1}}`,
			kind:   LabelSection,
			header: "Section 1 (Introduction)",
		},
		{
			name:   "figure with caption",
			input:  `\begin{figure}\caption{A cat}\label{fig:cat}\end{figure}`,
			kind:   LabelFloat,
			header: "Figure: A cat",
		},
		{
			name:   "theorem",
			input:  "\\newtheorem{lemma}{Lemma}\n\\begin{lemma}[Zorn]\\label{lem:zorn}\\end{lemma}",
			aux:    `\newlabel{lem:zorn}{{2}{3}}`,
			kind:   LabelTheorem,
			header: "Lemma 2 (Zorn)",
		},
		{
			name:   "equation",
			input:  `\begin{equation}\label{eq:1}\end{equation}`,
			aux:    `\newlabel{eq:1}{{3}{4}}`,
			kind:   LabelEquation,
			header: "Equation (3)",
		},
		{
			name:   "enum item",
			input:  `\begin{enumerate}\item\label{it:a}\end{enumerate}`,
			kind:   LabelEnumItem,
			header: "Item",
		},
		{
			name:   "plain",
			input:  `\label{free}`,
			kind:   LabelPlain,
			header: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parser.Parse(tt.input)
			related := []*parser.Node{root}
			if tt.aux != "" {
				related = append(related, parser.Parse(tt.aux))
			}
			renderer := NewLabelRenderer(nil, related)
			label := renderer.Render(first(t, root, parser.KindLabelDefinition))
			if label.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", label.Kind, tt.kind)
			}
			if label.Header != tt.header {
				t.Errorf("Header = %q, want %q", label.Header, tt.header)
			}
		})
	}
}

func TestLabelReferenceText(t *testing.T) {
	root := parser.Parse(`\begin{table}\caption{Results}\label{tab:r}\end{table}`)
	label := NewLabelRenderer(nil, []*parser.Node{root}).Render(first(t, root, parser.KindLabelDefinition))
	if got, want := label.ReferenceText(), "tab:r Table: Results Results"; got != want {
		t.Errorf("ReferenceText() = %q, want %q", got, want)
	}
}
