// Package main provides the entry point for the deckhand CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/deckhand/internal/doctree"
	"github.com/gorewood/deckhand/internal/guru"
	"github.com/gorewood/deckhand/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Source            string `json:"source"`
	Pages             int    `json:"pages"`
	IndexPages        int    `json:"index_pages"`
	Toctrees          int    `json:"toctrees"`
	Cards             int    `json:"cards"`
	Boards            int    `json:"boards"`
	BoardGroups       int    `json:"board_groups"`
	PublishedLocation string `json:"published_location,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var sourceFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show documentation tree and export state",
		Long: `Show the current state of the documentation tree.

Displays page and toctree counts, what an export would produce, and the
configuration in effect.

Examples:
  deckhand status            # Human-readable summary for ./
  deckhand status --json     # Summary as JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, sourceFlag)
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", ".", "Documentation source directory")

	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, source string) error {
	printer := newPrinter(cmd)

	tree, cfg, err := loadTree(printer, source)
	if err != nil {
		return err
	}

	cards, err := guru.Cards(tree, cfg)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}
	boards, err := guru.Boards(tree, cfg)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}
	groups, err := guru.BoardGroups(tree, cfg)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	indexPages := 0
	for _, docname := range tree.Pages() {
		if doctree.IsIndex(docname) {
			indexPages++
		}
	}

	result := statusResult{
		Source:            source,
		Pages:             len(tree.Pages()),
		IndexPages:        indexPages,
		Toctrees:          len(tree.Toctrees()),
		Cards:             len(cards),
		Boards:            len(boards),
		BoardGroups:       len(groups),
		PublishedLocation: cfg.PublishedLocation,
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("Source", result.Source)
	printer.KeyValue("Pages", strconv.Itoa(result.Pages))
	printer.KeyValue("Index pages", strconv.Itoa(result.IndexPages))
	printer.KeyValue("Toctrees", strconv.Itoa(result.Toctrees))
	printer.KeyValue("Cards", strconv.Itoa(result.Cards))
	printer.KeyValue("Boards", strconv.Itoa(result.Boards))
	printer.KeyValue("Board-groups", strconv.Itoa(result.BoardGroups))
	if result.PublishedLocation != "" {
		printer.KeyValue("Published at", result.PublishedLocation)
	}
	return nil
}
