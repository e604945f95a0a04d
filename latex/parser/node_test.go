package parser

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindError, "Error"},
		{KindRoot, "Root"},
		{KindCurlyGroupWordList, "CurlyGroupWordList"},
		{KindEnvironment, "Environment"},
		{KindSubsection, "Subsection"},
		{KindCitation, "Citation"},
		{KindBlockComment, "BlockComment"},
		{NodeKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestNodeAddChild(t *testing.T) {
	parent := &Node{Kind: KindCurlyGroup}
	child := &Node{Kind: KindText}

	parent.AddChild(child)
	parent.AddChild(nil)

	if len(parent.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(parent.Children))
	}
	if child.Parent != parent {
		t.Errorf("child.Parent was not set")
	}
}

func TestNodeAncestor(t *testing.T) {
	root := Parse(`\begin{figure}\caption{x}\label{fig}\end{figure}`)
	labels := root.Descendants(KindLabelDefinition)
	if len(labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(labels))
	}
	if labels[0].Ancestor(KindEnvironment) == nil {
		t.Errorf("label is not inside the environment")
	}
	if labels[0].Ancestor(KindSection) != nil {
		t.Errorf("label has no section ancestor")
	}
}

func TestNodeString(t *testing.T) {
	got := Parse(`\foo`).String()
	want := "Root\n  GenericCommand\n    Token CommandName '\\foo'\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Parse(`\cite{a}`))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{`"kind":"Root"`, `"kind":"Citation"`, `"command":"Citation"`, `"token":"a"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON %s does not contain %s", data, want)
		}
	}
}

func TestViewsDoNotMutate(t *testing.T) {
	input := `\section{A}\label{a}`
	root := Parse(input)
	before := root.StringWithPositions()
	_ = root.Text()
	_ = root.Leaves()
	_, _ = root.LeafAt(3)
	if after := root.StringWithPositions(); after != before {
		t.Errorf("tree changed:\n%s\nvs\n%s", before, after)
	}
}
