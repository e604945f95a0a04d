package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/completion"
	"github.com/dhamidi/texlyzer/project"
)

func newCompleteCmd() *cobra.Command {
	var root string
	var offset int
	var position string
	var matcher string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "complete <file>",
		Short: "Print the completion items at a position of a file",
		Long: `Print the completion items at a position of a file.

The position is a byte offset (--offset) or a 1-based line:column pair
(--position). Every source file below the root directory is loaded so
that citations, labels and user commands of related documents show up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			w, err := loadWorkspace(rootFor(root, filename), true)
			if err != nil {
				return err
			}
			doc, err := w.document(filename)
			if err != nil {
				return err
			}
			if position != "" {
				if offset, err = parsePosition(doc, position); err != nil {
					return err
				}
			}

			options := w.options.CompletionOptions()
			if matcher != "" {
				kind, ok := completion.ParseMatcherKind(matcher)
				if !ok {
					return errors.Errorf("unknown matcher: %s (expected one of %v)", matcher, completion.MatcherKinds)
				}
				options.Matcher = kind
			}

			related := project.New(w.codebase.RootDir(), w.codebase.Documents()).Related(doc.URI)
			ctx := completion.NewContext(doc, related, offset,
				completion.WithSyntax(w.codebase.Syntax()),
				completion.WithFS(w.fs),
			)
			client := completion.ClientProfile{SnippetSupport: true, MarkdownSupport: true}
			list := completion.Complete(ctx, options, client)
			log.Debugf("pattern %q matched %d items", ctx.Pattern, len(list.Items))

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(completion.ToProtocol(doc, list, client)); err != nil {
					return errors.Errorf("encode json: %w", err)
				}
				return nil
			}

			for _, item := range list.Items {
				fmt.Printf("%s\t%s\t%s\n", item.SortText[:5], item.Payload.Kind(), item.Payload.Label())
			}
			if list.Incomplete {
				fmt.Println("...")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "workspace root (default: directory of the file)")
	cmd.Flags().IntVar(&offset, "offset", 0, "byte offset of the cursor")
	cmd.Flags().StringVarP(&position, "position", "p", "", "cursor position as line:column, both 1-based")
	cmd.Flags().StringVarP(&matcher, "matcher", "m", "", "override the configured matcher")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the protocol completion list as JSON")

	return cmd
}

func parsePosition(doc *codebase.Document, position string) (int, error) {
	lineText, columnText, ok := strings.Cut(position, ":")
	if !ok {
		return 0, errors.Errorf("invalid position %q: expected line:column", position)
	}
	line, err := strconv.Atoi(lineText)
	if err != nil || line < 1 {
		return 0, errors.Errorf("invalid line in position %q", position)
	}
	column, err := strconv.Atoi(columnText)
	if err != nil || column < 1 {
		return 0, errors.Errorf("invalid column in position %q", position)
	}
	return doc.Lines.Offset(line-1, column-1), nil
}
