// Package completion resolves the cursor context of a document and builds
// ranked completion lists from the knowledge base and the user's documents.
//
// A request runs in two phases. Producers inspect the Context and register
// candidates with a Builder; Builder.Finish then matches every candidate
// against the typed pattern, ranks, deduplicates and truncates them.
package completion

type producer func(*Context, *Builder)

// producers run in this order. Candidates with equal rank keep their
// registration order, so earlier producers win ties.
var producers = []producer{
	addBeginSnippet,
	addEnvironments,
	addCommands,
	addCitations,
	addLabels,
	addGlossaryEntries,
	addAcronyms,
	addColors,
	addColorModels,
	addTikzLibraries,
	addPackagesAndClasses,
	addIncludes,
	addEntryTypes,
	addFields,
	addStrings,
	addArguments,
}

// Register runs every producer against ctx.
func (b *Builder) Register() {
	if b.ctx == nil || b.ctx.Document == nil {
		return
	}
	for _, produce := range producers {
		produce(b.ctx, b)
	}
}

// Complete registers the candidates for ctx and returns the finished list.
func Complete(ctx *Context, options Options, client ClientProfile) List {
	b := NewBuilder(ctx, options)
	b.Register()
	return b.Finish(client)
}
