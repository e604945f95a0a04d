package parser

// CommandKind is the semantic class of a command name. The parser dispatches
// on it instead of on the raw command text.
type CommandKind int

const (
	CommandGeneric CommandKind = iota
	CommandBeginEnvironment
	CommandEndEnvironment
	CommandBeginEquation
	CommandEndEquation
	CommandSection
	CommandEnumItem
	CommandCaption
	CommandCitation
	CommandPackageInclude
	CommandClassInclude
	CommandLatexInclude
	CommandBiblatexInclude
	CommandBibtexInclude
	CommandGraphicsInclude
	CommandSvgInclude
	CommandInkscapeInclude
	CommandVerbatimInclude
	CommandImport
	CommandLabelDefinition
	CommandLabelReference
	CommandLabelReferenceRange
	CommandLabelNumber
	CommandOldCommandDefinition
	CommandNewCommandDefinition
	CommandMathOperator
	CommandGlossaryEntryDefinition
	CommandGlossaryEntryReference
	CommandAcronymDefinition
	CommandAcronymDeclaration
	CommandAcronymReference
	CommandTheoremDefinitionAmsThm
	CommandTheoremDefinitionThmTools
	CommandColorReference
	CommandColorDefinition
	CommandColorSetDefinition
	CommandTikzLibraryImport
	CommandEnvironmentDefinition
	CommandGraphicsPath
	CommandBeginBlockComment
	CommandEndBlockComment
	CommandVerbatimBlock
	CommandBibItem
)

var commandKindNames = map[CommandKind]string{
	CommandGeneric:                   "Generic",
	CommandBeginEnvironment:          "BeginEnvironment",
	CommandEndEnvironment:            "EndEnvironment",
	CommandBeginEquation:             "BeginEquation",
	CommandEndEquation:               "EndEquation",
	CommandSection:                   "Section",
	CommandEnumItem:                  "EnumItem",
	CommandCaption:                   "Caption",
	CommandCitation:                  "Citation",
	CommandPackageInclude:            "PackageInclude",
	CommandClassInclude:              "ClassInclude",
	CommandLatexInclude:              "LatexInclude",
	CommandBiblatexInclude:           "BiblatexInclude",
	CommandBibtexInclude:             "BibtexInclude",
	CommandGraphicsInclude:           "GraphicsInclude",
	CommandSvgInclude:                "SvgInclude",
	CommandInkscapeInclude:           "InkscapeInclude",
	CommandVerbatimInclude:           "VerbatimInclude",
	CommandImport:                    "Import",
	CommandLabelDefinition:           "LabelDefinition",
	CommandLabelReference:            "LabelReference",
	CommandLabelReferenceRange:       "LabelReferenceRange",
	CommandLabelNumber:               "LabelNumber",
	CommandOldCommandDefinition:      "OldCommandDefinition",
	CommandNewCommandDefinition:      "NewCommandDefinition",
	CommandMathOperator:              "MathOperator",
	CommandGlossaryEntryDefinition:   "GlossaryEntryDefinition",
	CommandGlossaryEntryReference:    "GlossaryEntryReference",
	CommandAcronymDefinition:         "AcronymDefinition",
	CommandAcronymDeclaration:        "AcronymDeclaration",
	CommandAcronymReference:          "AcronymReference",
	CommandTheoremDefinitionAmsThm:   "TheoremDefinitionAmsThm",
	CommandTheoremDefinitionThmTools: "TheoremDefinitionThmTools",
	CommandColorReference:            "ColorReference",
	CommandColorDefinition:           "ColorDefinition",
	CommandColorSetDefinition:        "ColorSetDefinition",
	CommandTikzLibraryImport:         "TikzLibraryImport",
	CommandEnvironmentDefinition:     "EnvironmentDefinition",
	CommandGraphicsPath:              "GraphicsPath",
	CommandBeginBlockComment:         "BeginBlockComment",
	CommandEndBlockComment:           "EndBlockComment",
	CommandVerbatimBlock:             "VerbatimBlock",
	CommandBibItem:                   "BibItem",
}

func (k CommandKind) String() string {
	if name, ok := commandKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// SectionLevel orders sectioning commands; a smaller level is an outer level.
type SectionLevel int

const (
	LevelPart SectionLevel = iota + 1
	LevelChapter
	LevelSection
	LevelSubsection
	LevelSubsubsection
	LevelParagraph
	LevelSubparagraph
)

var sectionLevels = map[string]SectionLevel{
	"part":          LevelPart,
	"chapter":       LevelChapter,
	"section":       LevelSection,
	"subsection":    LevelSubsection,
	"subsubsection": LevelSubsubsection,
	"paragraph":     LevelParagraph,
	"subparagraph":  LevelSubparagraph,
}

var staticCommands = map[string]CommandKind{
	"begin": CommandBeginEnvironment,
	"end":   CommandEndEnvironment,
	"[":     CommandBeginEquation,
	"]":     CommandEndEquation,

	"item":    CommandEnumItem,
	"caption": CommandCaption,

	"usepackage":      CommandPackageInclude,
	"RequirePackage":  CommandPackageInclude,
	"documentclass":   CommandClassInclude,
	"include":         CommandLatexInclude,
	"subfileinclude":  CommandLatexInclude,
	"input":           CommandLatexInclude,
	"subfile":         CommandLatexInclude,
	"addbibresource":  CommandBiblatexInclude,
	"bibliography":    CommandBibtexInclude,
	"includegraphics": CommandGraphicsInclude,
	"includesvg":      CommandSvgInclude,
	"includeinkscape": CommandInkscapeInclude,
	"verbatiminput":   CommandVerbatimInclude,
	"VerbatimInput":   CommandVerbatimInclude,
	"import":          CommandImport,
	"subimport":       CommandImport,
	"inputfrom":       CommandImport,
	"subinputfrom":    CommandImport,
	"subincludefrom":  CommandImport,

	"label":         CommandLabelDefinition,
	"ref":           CommandLabelReference,
	"vref":          CommandLabelReference,
	"Vref":          CommandLabelReference,
	"autoref":       CommandLabelReference,
	"pageref":       CommandLabelReference,
	"cref":          CommandLabelReference,
	"cref*":         CommandLabelReference,
	"Cref":          CommandLabelReference,
	"Cref*":         CommandLabelReference,
	"namecref":      CommandLabelReference,
	"nameCref":      CommandLabelReference,
	"lcnamecref":    CommandLabelReference,
	"namecrefs":     CommandLabelReference,
	"nameCrefs":     CommandLabelReference,
	"lcnamecrefs":   CommandLabelReference,
	"labelcref":     CommandLabelReference,
	"labelcpageref": CommandLabelReference,
	"eqref":         CommandLabelReference,
	"crefrange":     CommandLabelReferenceRange,
	"crefrange*":    CommandLabelReferenceRange,
	"Crefrange":     CommandLabelReferenceRange,
	"Crefrange*":    CommandLabelReferenceRange,
	"newlabel":      CommandLabelNumber,

	"def":                   CommandOldCommandDefinition,
	"let":                   CommandOldCommandDefinition,
	"newcommand":            CommandNewCommandDefinition,
	"newcommand*":           CommandNewCommandDefinition,
	"renewcommand":          CommandNewCommandDefinition,
	"renewcommand*":         CommandNewCommandDefinition,
	"providecommand":        CommandNewCommandDefinition,
	"providecommand*":       CommandNewCommandDefinition,
	"DeclareRobustCommand":  CommandNewCommandDefinition,
	"DeclareRobustCommand*": CommandNewCommandDefinition,
	"DeclareMathOperator":   CommandMathOperator,
	"DeclareMathOperator*":  CommandMathOperator,

	"newglossaryentry": CommandGlossaryEntryDefinition,
	"gls":              CommandGlossaryEntryReference,
	"Gls":              CommandGlossaryEntryReference,
	"GLS":              CommandGlossaryEntryReference,
	"glspl":            CommandGlossaryEntryReference,
	"Glspl":            CommandGlossaryEntryReference,
	"GLSpl":            CommandGlossaryEntryReference,
	"glsdisp":          CommandGlossaryEntryReference,
	"glslink":          CommandGlossaryEntryReference,
	"glstext":          CommandGlossaryEntryReference,
	"Glstext":          CommandGlossaryEntryReference,
	"glsfirst":         CommandGlossaryEntryReference,
	"glsdesc":          CommandGlossaryEntryReference,
	"glssymbol":        CommandGlossaryEntryReference,
	"newacronym":       CommandAcronymDefinition,
	"DeclareAcronym":   CommandAcronymDeclaration,
	"acrshort":         CommandAcronymReference,
	"Acrshort":         CommandAcronymReference,
	"ACRshort":         CommandAcronymReference,
	"acrshortpl":       CommandAcronymReference,
	"acrlong":          CommandAcronymReference,
	"Acrlong":          CommandAcronymReference,
	"ACRlong":          CommandAcronymReference,
	"acrlongpl":        CommandAcronymReference,
	"acrfull":          CommandAcronymReference,
	"Acrfull":          CommandAcronymReference,
	"ACRfull":          CommandAcronymReference,
	"acrfullpl":        CommandAcronymReference,
	"ac":               CommandAcronymReference,
	"Ac":               CommandAcronymReference,
	"acp":              CommandAcronymReference,
	"Acp":              CommandAcronymReference,

	"newtheorem":      CommandTheoremDefinitionAmsThm,
	"newtheorem*":     CommandTheoremDefinitionAmsThm,
	"declaretheorem":  CommandTheoremDefinitionThmTools,
	"declaretheorem*": CommandTheoremDefinitionThmTools,

	"color":          CommandColorReference,
	"colorbox":       CommandColorReference,
	"textcolor":      CommandColorReference,
	"pagecolor":      CommandColorReference,
	"definecolor":    CommandColorDefinition,
	"definecolorset": CommandColorSetDefinition,
	"usepgflibrary":  CommandTikzLibraryImport,
	"usetikzlibrary": CommandTikzLibraryImport,

	"newenvironment":    CommandEnvironmentDefinition,
	"newenvironment*":   CommandEnvironmentDefinition,
	"renewenvironment":  CommandEnvironmentDefinition,
	"renewenvironment*": CommandEnvironmentDefinition,

	"graphicspath": CommandGraphicsPath,
	"iffalse":      CommandBeginBlockComment,
	"fi":           CommandEndBlockComment,
	"verb":         CommandVerbatimBlock,
	"verb*":        CommandVerbatimBlock,
	"bibitem":      CommandBibItem,
}

var staticCitations = []string{
	"cite", "cite*", "Cite", "nocite", "citet", "citet*", "citep", "citep*",
	"citeauthor", "citeauthor*", "Citeauthor", "Citeauthor*", "citetitle", "citetitle*",
	"citeyear", "citeyear*", "citedate", "citedate*", "citeurl", "fullcite", "citeyearpar",
	"citealt", "citealp", "citetext", "parencite", "parencite*", "Parencite", "footcite",
	"footfullcite", "footcitetext", "textcite", "Textcite", "smartcite", "Smartcite",
	"supercite", "autocite", "autocite*", "Autocite", "Autocite*", "volcite", "Volcite",
	"pvolcite", "Pvolcite", "fvolcite", "ftvolcite", "svolcite", "Svolcite", "tvolcite",
	"Tvolcite", "avolcite", "Avolcite", "notecite", "Notecite", "pnotecite", "Pnotecite",
	"fnotecite", "citeA", "citeA*", "citeN", "shortcite", "shortciteN", "citeasnoun",
	"footcites", "parencites", "textcites", "autocites", "cites", "Cites",
}

func init() {
	for _, name := range staticCitations {
		staticCommands[name] = CommandCitation
	}
}

// Classify resolves the command kind of name (without backslash). The static
// table wins; the configuration contributes user-declared commands.
func Classify(name string, config *SyntaxConfig) (CommandKind, SectionLevel) {
	base := name
	if n := len(base); n > 1 && base[n-1] == '*' {
		base = base[:n-1]
	}
	if level, ok := sectionLevels[base]; ok {
		return CommandSection, level
	}
	if kind, ok := staticCommands[name]; ok {
		return kind, 0
	}
	if config == nil {
		return CommandGeneric, 0
	}
	switch {
	case config.CitationCommands.Has(name):
		return CommandCitation, 0
	case config.LabelDefinitionCommands.Has(name):
		return CommandLabelDefinition, 0
	case config.LabelReferenceCommands.Has(name):
		return CommandLabelReference, 0
	case config.LabelReferenceRangeCommands.Has(name):
		return CommandLabelReferenceRange, 0
	}
	return CommandGeneric, 0
}
