package parser

// StringSet is a set of names.
type StringSet map[string]struct{}

func NewStringSet(names ...string) StringSet {
	s := make(StringSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

func (s StringSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s StringSet) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// LabelPrefix maps a command name to the prefix its label argument gets.
type LabelPrefix map[string]string

// SyntaxConfig describes the user-configurable part of the grammar.
type SyntaxConfig struct {
	MathEnvironments     StringSet
	EnumEnvironments     StringSet
	VerbatimEnvironments StringSet
	FloatEnvironments    StringSet

	CitationCommands            StringSet
	LabelDefinitionCommands     StringSet
	LabelReferenceCommands      StringSet
	LabelReferenceRangeCommands StringSet

	LabelDefinitionPrefixes LabelPrefix
	LabelReferencePrefixes  LabelPrefix
}

// DefaultSyntaxConfig returns the configuration used when nothing else is set.
func DefaultSyntaxConfig() *SyntaxConfig {
	return &SyntaxConfig{
		MathEnvironments: NewStringSet(
			"align", "align*", "alignat", "alignat*", "aligned", "alignedat",
			"array", "Bmatrix", "bmatrix", "cases", "displaymath", "eqnarray",
			"eqnarray*", "equation", "equation*", "flalign", "flalign*", "gather",
			"gather*", "gathered", "math", "matrix", "multline", "multline*",
			"pmatrix", "smallmatrix", "split", "subarray", "Vmatrix", "vmatrix",
		),
		EnumEnvironments: NewStringSet("enumerate", "itemize", "description"),
		VerbatimEnvironments: NewStringSet(
			"pycode", "minted", "asy", "lstlisting", "verbatim", "verbatim*",
			"Verbatim", "comment", "filecontents", "filecontents*",
		),
		FloatEnvironments: NewStringSet(
			"figure", "figure*", "table", "table*", "algorithm", "algorithm*",
			"lstlisting", "listing", "subfigure", "subtable",
		),
		CitationCommands:            NewStringSet(),
		LabelDefinitionCommands:     NewStringSet(),
		LabelReferenceCommands:      NewStringSet(),
		LabelReferenceRangeCommands: NewStringSet(),
		LabelDefinitionPrefixes:     LabelPrefix{},
		LabelReferencePrefixes:      LabelPrefix{},
	}
}

// Clone returns a deep copy, so callers can extend the sets without
// touching a shared configuration.
func (c *SyntaxConfig) Clone() *SyntaxConfig {
	if c == nil {
		return DefaultSyntaxConfig()
	}
	cloneSet := func(s StringSet) StringSet {
		out := make(StringSet, len(s))
		for k := range s {
			out[k] = struct{}{}
		}
		return out
	}
	clonePrefix := func(p LabelPrefix) LabelPrefix {
		out := make(LabelPrefix, len(p))
		for k, v := range p {
			out[k] = v
		}
		return out
	}
	return &SyntaxConfig{
		MathEnvironments:            cloneSet(c.MathEnvironments),
		EnumEnvironments:            cloneSet(c.EnumEnvironments),
		VerbatimEnvironments:        cloneSet(c.VerbatimEnvironments),
		FloatEnvironments:           cloneSet(c.FloatEnvironments),
		CitationCommands:            cloneSet(c.CitationCommands),
		LabelDefinitionCommands:     cloneSet(c.LabelDefinitionCommands),
		LabelReferenceCommands:      cloneSet(c.LabelReferenceCommands),
		LabelReferenceRangeCommands: cloneSet(c.LabelReferenceRangeCommands),
		LabelDefinitionPrefixes:     clonePrefix(c.LabelDefinitionPrefixes),
		LabelReferencePrefixes:      clonePrefix(c.LabelReferencePrefixes),
	}
}
