// Package main provides the entry point for the deckhand CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/deckhand/internal/config"
	"github.com/gorewood/deckhand/internal/guru"
	"github.com/gorewood/deckhand/internal/output"
)

// newBuildCmd creates the build command.
func newBuildCmd() *cobra.Command {
	var sourceFlag string
	var outFlag string
	var locationFlag string
	var noArchiveFlag bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the documentation tree to Guru records",
		Long: `Export the documentation tree to Guru card, board and board-group records.

Scans the source directory, writes one YAML record per entity under the
output directory, and packages everything into a guru.zip sibling of the
output directory.

Examples:
  deckhand build                                      # Export ./ to ./_build/guru
  deckhand build --source ./docs --out ./out/guru     # Explicit directories
  deckhand build --published-location https://docs.example.com
  deckhand build --no-archive                         # Records only, no guru.zip`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, sourceFlag, outFlag, locationFlag, noArchiveFlag)
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", ".", "Documentation source directory")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default <source>/_build/guru)")
	cmd.Flags().StringVar(&locationFlag, "published-location", "", "Base URL of the published docs (overrides config)")
	cmd.Flags().BoolVar(&noArchiveFlag, "no-archive", false, "Skip writing guru.zip")

	return cmd
}

// runBuild executes the build command. Cards are written first (the
// per-page stage), then the aggregation stage runs over the complete tree:
// collection record, board-groups, boards, archive.
func runBuild(cmd *cobra.Command, source, out, location string, noArchive bool) error {
	printer := newPrinter(cmd)

	tree, cfg, err := loadTree(printer, source)
	if err != nil {
		return err
	}
	if location != "" {
		cfg.PublishedLocation = location
	}
	if out == "" {
		out = config.DefaultOutDir(source)
	}

	cards, err := guru.Cards(tree, cfg)
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
	boards, err := guru.Boards(tree, cfg)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	writer := guru.NewWriter(out, printer.Warn)
	for _, card := range cards {
		writer.WriteCard(card)
	}
	writer.WriteCollection()
	for _, group := range groups {
		writer.WriteBoardGroup(group)
	}
	for _, board := range boards {
		writer.WriteBoard(board)
	}

	result := map[string]any{
		"message":      "Export complete",
		"out":          out,
		"cards":        len(cards),
		"boards":       len(boards),
		"board_groups": len(groups),
	}

	if !noArchive {
		archivePath, err := guru.Archive(out)
		if err != nil {
			sysErr := output.NewSystemErrorWithCause("writing archive failed", err)
			printer.Error(sysErr)
			return sysErr
		}
		result["archive"] = archivePath
	}

	if printer.IsJSON() {
		delete(result, "message")
		return printer.WriteJSON(result)
	}

	if err := printer.Success(map[string]any{"message": "Export complete"}); err != nil {
		return err
	}
	printer.KeyValue("Output", out)
	printer.KeyValue("Cards", strconv.Itoa(len(cards)))
	printer.KeyValue("Boards", strconv.Itoa(len(boards)))
	printer.KeyValue("Board-groups", strconv.Itoa(len(groups)))
	if archive, ok := result["archive"].(string); ok {
		printer.KeyValue("Archive", archive)
	}
	return nil
}
