package guru

import (
	"github.com/gorewood/deckhand/internal/config"
	"github.com/gorewood/deckhand/internal/doctree"
)

// Result summarizes one export run.
type Result struct {
	Cards       int    `json:"cards"`
	Boards      int    `json:"boards"`
	BoardGroups int    `json:"board_groups"`
	ArchivePath string `json:"archive,omitempty"`
}

// Export runs the full transformation against a frozen tree: per-page card
// records first, then the aggregation pass (collection, board-groups,
// boards), then the archive. The aggregation must not start before every
// page has been seen; callers hand over a complete tree and Export keeps
// the two stages strictly ordered.
func Export(tree *doctree.Tree, cfg *config.Config, writer *Writer, archive bool) (*Result, error) {
	cards, err := Cards(tree, cfg)
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		writer.WriteCard(card)
	}

	writer.WriteCollection()

	groups, err := BoardGroups(tree, cfg)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		writer.WriteBoardGroup(group)
	}

	boards, err := Boards(tree, cfg)
	if err != nil {
		return nil, err
	}
	for _, board := range boards {
		writer.WriteBoard(board)
	}

	result := &Result{
		Cards:       len(cards),
		Boards:      len(boards),
		BoardGroups: len(groups),
	}

	if archive {
		archivePath, err := Archive(writer.OutDir())
		if err != nil {
			return nil, err
		}
		result.ArchivePath = archivePath
	}

	return result, nil
}
