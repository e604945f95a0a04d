package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/texlyzer/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a LaTeX or BibTeX file and dump the result",
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

			var encoder format.Encoder
			if outputFormat == "tree" {
				encoder = format.NewTreeEncoder(os.Stdout, includePositions)
			} else if encoder, err = format.NewEncoder(outputFormat, os.Stdout); err != nil {
				return err
			}
			return encoder.Encode(doc)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include byte spans in tree output")

	return cmd
}
