package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/deckhand/internal/guru"
	"github.com/gorewood/deckhand/internal/output"
)

// cardView is the JSON projection of a card for command output.
type cardView struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags,omitempty"`
	ExternalID  string   `json:"external_id"`
	ExternalURL string   `json:"external_url,omitempty"`
}

// newCardsCmd creates the cards command.
func newCardsCmd() *cobra.Command {
	var sourceFlag string

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Preview the card records an export would produce",
		Long: `Preview the card records an export would produce, without writing anything.

One card is produced per page; index pages are structural and excluded.

Examples:
  deckhand cards                    # Table of cards for ./
  deckhand cards --source ./docs    # Explicit source directory
  deckhand cards --json             # Card records as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCards(cmd, sourceFlag)
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", ".", "Documentation source directory")

	return cmd
}

// runCards executes the cards command.
func runCards(cmd *cobra.Command, source string) error {
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

	if printer.IsJSON() {
		views := make([]cardView, 0, len(cards))
		for _, card := range cards {
			views = append(views, cardView{
				Title:       card.Title,
				Tags:        card.Tags,
				ExternalID:  card.ExternalID,
				ExternalURL: card.ExternalURL,
			})
		}
		return printer.WriteJSON(views)
	}

	if len(cards) == 0 {
		printer.Println("No cards: the tree has no non-index pages.")
		return nil
	}

	rows := make([][]string, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, []string{card.ExternalID, card.Title, strings.Join(card.Tags, ", ")})
	}
	printer.Table([]string{"DOCNAME", "TITLE", "TAGS"}, rows)
	printer.Println()
	printer.KeyValue("Cards", strconv.Itoa(len(cards)))
	return nil
}
