package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	bibparser "github.com/dhamidi/texlyzer/bibtex/parser"
	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/latex/parser"
)

func newTokensCmd() *cobra.Command {
	var skipTrivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a LaTeX or BibTeX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			w, err := loadWorkspace(rootFor("", filename), false)
			if err != nil {
				return err
			}
			doc, err := w.document(filename)
			if err != nil {
				return err
			}

			out := os.Stdout
			switch doc.Language {
			case codebase.LanguageBib:
				for _, tok := range bibparser.Tokenize(doc.Text) {
					if skipTrivia && tok.Kind.IsTrivia() {
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", tok.Span, tok)
				}
			default:
				for _, tok := range parser.Tokenize(doc.Text, w.codebase.Syntax()) {
					if skipTrivia && tok.Kind.IsTrivia() {
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", tok.Span, tok)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipTrivia, "skip-trivia", false, "omit whitespace, line breaks and comments")

	return cmd
}
