package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/texlyzer/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("starting language server %s", version)
			return lsp.NewServer(version).RunStdio()
		},
	}
}
