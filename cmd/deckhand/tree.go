// Package main provides the entry point for the deckhand CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/deckhand/internal/config"
	"github.com/gorewood/deckhand/internal/doctree"
	"github.com/gorewood/deckhand/internal/output"
)

// loadTree loads the configuration and scans the documentation tree.
// Failures are user errors: a broken config file or a tree that violates
// preconditions (for example an untitled page).
func loadTree(printer *output.Printer, source string) (*doctree.Tree, *config.Config, error) {
	cfg, err := config.Load(source)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return nil, nil, userErr
	}

	tree, err := doctree.Scan(source)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return nil, nil, userErr
	}

	return tree, cfg, nil
}

// newPrinter builds the printer for a command, honoring --json and routing
// human-mode errors to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())
}
