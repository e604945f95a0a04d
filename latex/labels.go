package latex

import (
	"strings"

	"github.com/dhamidi/texlyzer/latex/parser"
)

type LabelKind int

const (
	LabelPlain LabelKind = iota
	LabelSection
	LabelFloat
	LabelTheorem
	LabelEquation
	LabelEnumItem
)

var labelKindNames = map[LabelKind]string{
	LabelPlain:    "Plain",
	LabelSection:  "Section",
	LabelFloat:    "Float",
	LabelTheorem:  "Theorem",
	LabelEquation: "Equation",
	LabelEnumItem: "EnumItem",
}

func (k LabelKind) String() string {
	if name, ok := labelKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// RenderedLabel describes the object a label points to.
type RenderedLabel struct {
	Name   string
	Kind   LabelKind
	Object string // "Section", "Figure", "Lemma", ...
	Number string // from \newlabel in an .aux file; may be empty
	Text   string // section title, caption or theorem note
	Header string // e.g. "Section 2 (Introduction)"
	Footer string
}

// ReferenceText is the text a reference to the label would show, used for
// filtering label candidates.
func (r RenderedLabel) ReferenceText() string {
	parts := []string{r.Name}
	if r.Header != "" {
		parts = append(parts, r.Header)
	}
	if r.Footer != "" {
		parts = append(parts, r.Footer)
	}
	return strings.Join(parts, " ")
}

// LabelRenderer resolves label definitions against a set of related trees.
type LabelRenderer struct {
	config   *parser.SyntaxConfig
	numbers  map[string]string
	theorems []*Symbols
}

// NewLabelRenderer indexes the \newlabel entries and theorem definitions of
// the related trees. Trees of .aux files are passed alongside the sources.
func NewLabelRenderer(config *parser.SyntaxConfig, related []*parser.Node) *LabelRenderer {
	if config == nil {
		config = parser.DefaultSyntaxConfig()
	}
	r := &LabelRenderer{config: config, numbers: map[string]string{}}
	for _, root := range related {
		if root == nil {
			continue
		}
		for _, n := range root.Descendants(parser.KindLabelNumber) {
			number := LabelNumber{n}
			if key, ok := number.Name(); ok {
				if _, seen := r.numbers[key.Text()]; !seen {
					r.numbers[key.Text()] = number.Number()
				}
			}
		}
		r.theorems = append(r.theorems, CollectSymbols(root))
	}
	return r
}

// Number returns the number recorded for name in the .aux files.
func (r *LabelRenderer) Number(name string) string {
	return r.numbers[name]
}

// Render describes the label defined by def, a LabelDefinition node.
func (r *LabelRenderer) Render(def *parser.Node) RenderedLabel {
	key, ok := (LabelDefinition{def}).Name()
	if !ok {
		return RenderedLabel{}
	}
	label := RenderedLabel{Name: key.Text(), Number: r.numbers[key.Text()]}

	for n := def.Parent; n != nil; n = n.Parent {
		switch {
		case n.Kind.IsSection():
			section := Section{n}
			label.Kind = LabelSection
			label.Object = section.Label()
			label.Text = section.Title()
			label.Header = withNumber(label.Object, label.Number) + parenthesized(label.Text)
			return label

		case n.Kind == parser.KindEquation:
			return r.equation(label)

		case n.Kind == parser.KindEnumItem:
			item := EnumItem{n}
			label.Kind = LabelEnumItem
			label.Object = "Item"
			if label.Number == "" {
				label.Number = item.Label()
			}
			label.Header = withNumber(label.Object, label.Number)
			return label

		case n.Kind == parser.KindEnvironment:
			if rendered, ok := r.environment(label, Environment{n}); ok {
				return rendered
			}
		}
	}
	return label
}

func (r *LabelRenderer) equation(label RenderedLabel) RenderedLabel {
	label.Kind = LabelEquation
	label.Object = "Equation"
	if label.Number != "" {
		label.Header = "Equation (" + label.Number + ")"
	} else {
		label.Header = "Equation"
	}
	return label
}

func (r *LabelRenderer) environment(label RenderedLabel, env Environment) (RenderedLabel, bool) {
	key, ok := env.Name()
	if !ok {
		return label, false
	}
	name := key.Text()

	if r.config.MathEnvironments.Has(name) {
		return r.equation(label), true
	}

	if description, ok := DefinesTheorem(r.theorems, name); ok {
		label.Kind = LabelTheorem
		label.Object = description
		if label.Object == "" {
			label.Object = titleCase(name)
		}
		label.Text = Content(env.Options())
		label.Header = withNumber(label.Object, label.Number) + parenthesized(label.Text)
		return label, true
	}

	var caption *parser.Node
	if captions := env.Node.Descendants(parser.KindCaption); len(captions) > 0 {
		caption = captions[0]
	}
	if caption != nil || r.config.FloatEnvironments.Has(name) {
		label.Kind = LabelFloat
		label.Object = floatName(name)
		if caption != nil {
			label.Text = (Caption{caption}).Long()
		}
		label.Header = withNumber(label.Object, label.Number)
		if label.Text != "" {
			label.Header += ": " + label.Text
			label.Footer = label.Text
		}
		return label, true
	}
	return label, false
}

func withNumber(object, number string) string {
	if number == "" {
		return object
	}
	return object + " " + number
}

func parenthesized(text string) string {
	if text == "" {
		return ""
	}
	return " (" + text + ")"
}

var floatNames = map[string]string{
	"figure":     "Figure",
	"subfigure":  "Subfigure",
	"table":      "Table",
	"subtable":   "Subtable",
	"listing":    "Listing",
	"lstlisting": "Listing",
	"algorithm":  "Algorithm",
}

func floatName(env string) string {
	env = strings.TrimSuffix(env, "*")
	if name, ok := floatNames[env]; ok {
		return name
	}
	return titleCase(env)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
