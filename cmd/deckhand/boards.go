package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/deckhand/internal/guru"
	"github.com/gorewood/deckhand/internal/output"
)

// boardView is the JSON projection of a board for command output.
type boardView struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Items       []itemView `json:"items"`
	ExternalID  string     `json:"external_id"`
	ExternalURL string     `json:"external_url,omitempty"`
}

// itemView is the JSON projection of a board item.
type itemView struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// groupView is the JSON projection of a board-group.
type groupView struct {
	Title       string   `json:"title"`
	Boards      []string `json:"boards"`
	ExternalID  string   `json:"external_id"`
	ExternalURL string   `json:"external_url,omitempty"`
}

// newBoardsCmd creates the boards command.
func newBoardsCmd() *cobra.Command {
	var sourceFlag string

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Preview the board and board-group records an export would produce",
		Long: `Preview the board and board-group records an export would produce.

One board is produced per toctree that directly includes at least one
non-index page; board-groups cluster top-level sections holding two or
more boards.

Examples:
  deckhand boards                   # Boards and groups for ./
  deckhand boards --source ./docs   # Explicit source directory
  deckhand boards --json            # Records as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoards(cmd, sourceFlag)
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", ".", "Documentation source directory")

	return cmd
}

// runBoards executes the boards command.
func runBoards(cmd *cobra.Command, source string) error {
	printer := newPrinter(cmd)

	tree, cfg, err := loadTree(printer, source)
	if err != nil {
		return err
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

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"boards": boardViews(boards),
			"groups": groupViews(groups),
		})
	}

	if len(boards) == 0 {
		printer.Println("No boards: no toctree includes a non-index page.")
		return nil
	}

	rows := make([][]string, 0, len(boards))
	for _, board := range boards {
		rows = append(rows, []string{guru.BoardKey(board), board.Title, strconv.Itoa(len(board.Items))})
	}
	printer.Table([]string{"BOARD", "TITLE", "CARDS"}, rows)

	if len(groups) > 0 {
		printer.Println()
		groupRows := make([][]string, 0, len(groups))
		for _, group := range groups {
			groupRows = append(groupRows, []string{group.ExternalID, group.Title, strings.Join(group.Boards, ", ")})
		}
		printer.Table([]string{"GROUP", "TITLE", "BOARDS"}, groupRows)
	}
	return nil
}

// boardViews maps boards to their JSON projection.
func boardViews(boards []*guru.Board) []boardView {
	views := make([]boardView, 0, len(boards))
	for _, board := range boards {
		view := boardView{
			Key:         guru.BoardKey(board),
			Title:       board.Title,
			ExternalID:  board.ExternalID,
			ExternalURL: board.ExternalURL,
		}
		for _, item := range board.Items {
			view.Items = append(view.Items, itemView{ID: item.ID, Type: item.Type})
		}
		views = append(views, view)
	}
	return views
}

// groupViews maps board-groups to their JSON projection.
func groupViews(groups []*guru.BoardGroup) []groupView {
	views := make([]groupView, 0, len(groups))
	for _, group := range groups {
		views = append(views, groupView{
			Title:       group.Title,
			Boards:      group.Boards,
			ExternalID:  group.ExternalID,
			ExternalURL: group.ExternalURL,
		})
	}
	return views
}
