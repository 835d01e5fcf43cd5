package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/deckhand/internal/config"
	"github.com/gorewood/deckhand/internal/doctree"
	"github.com/gorewood/deckhand/internal/guru"
)

// --- Shared types ---

// CardRecord is a card in tool output.
type CardRecord struct {
	Title       string   `json:"title"                  jsonschema:"page title"`
	Tags        []string `json:"tags,omitempty"         jsonschema:"namespaced directory tags in order"`
	ExternalID  string   `json:"external_id"            jsonschema:"docname of the page"`
	ExternalURL string   `json:"external_url,omitempty" jsonschema:"published page URL, empty when unconfigured"`
}

// ItemRecord is one board entry in tool output.
type ItemRecord struct {
	ID   string `json:"id"   jsonschema:"card entity id"`
	Type string `json:"type" jsonschema:"item type, always card"`
}

// BoardRecord is a board in tool output.
type BoardRecord struct {
	Key         string       `json:"key"                    jsonschema:"record key (directory entity id)"`
	Title       string       `json:"title"                  jsonschema:"breadcrumb title"`
	Items       []ItemRecord `json:"items"                  jsonschema:"cards on the board, in source order"`
	ExternalID  string       `json:"external_id"            jsonschema:"toctree name"`
	ExternalURL string       `json:"external_url,omitempty" jsonschema:"published board URL"`
}

// GroupRecord is a board-group in tool output.
type GroupRecord struct {
	Title       string   `json:"title"                  jsonschema:"title of the segment's index page"`
	Boards      []string `json:"boards"                 jsonschema:"member board entity ids"`
	ExternalID  string   `json:"external_id"            jsonschema:"top-level path segment"`
	ExternalURL string   `json:"external_url,omitempty" jsonschema:"published root index URL"`
}

// loadTree scans the documentation tree and its configuration.
func loadTree(source string) (*doctree.Tree, *config.Config, error) {
	cfg, err := config.Load(source)
	if err != nil {
		return nil, nil, err
	}
	tree, err := doctree.Scan(source)
	if err != nil {
		return nil, nil, err
	}
	return tree, cfg, nil
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Source            string `json:"source"                       jsonschema:"documentation source directory"`
	Pages             int    `json:"pages"                        jsonschema:"number of scanned pages"`
	Toctrees          int    `json:"toctrees"                     jsonschema:"number of toctree declarations"`
	PublishedLocation string `json:"published_location,omitempty" jsonschema:"configured publish base URL"`
}

func handleStatus(source string) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		tree, cfg, err := loadTree(source)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		return nil, StatusOutput{
			Source:            source,
			Pages:             len(tree.Pages()),
			Toctrees:          len(tree.Toctrees()),
			PublishedLocation: cfg.PublishedLocation,
		}, nil
	}
}

// --- Cards tool ---

// CardsInput is the input for the cards tool (no parameters needed).
type CardsInput struct{}

// CardsOutput is the output for the cards tool.
type CardsOutput struct {
	Count int          `json:"count"           jsonschema:"number of card records"`
	Cards []CardRecord `json:"cards,omitempty" jsonschema:"card records in page order"`
}

func handleCards(source string) mcp.ToolHandlerFor[CardsInput, CardsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CardsInput) (*mcp.CallToolResult, CardsOutput, error) {
		tree, cfg, err := loadTree(source)
		if err != nil {
			return nil, CardsOutput{}, err
		}

		cards, err := guru.Cards(tree, cfg)
		if err != nil {
			return nil, CardsOutput{}, fmt.Errorf("building cards: %w", err)
		}

		out := CardsOutput{Count: len(cards)}
		for _, card := range cards {
			out.Cards = append(out.Cards, CardRecord{
				Title:       card.Title,
				Tags:        card.Tags,
				ExternalID:  card.ExternalID,
				ExternalURL: card.ExternalURL,
			})
		}
		return nil, out, nil
	}
}

// --- Boards tool ---

// BoardsInput is the input for the boards tool (no parameters needed).
type BoardsInput struct{}

// BoardsOutput is the output for the boards tool.
type BoardsOutput struct {
	Boards []BoardRecord `json:"boards,omitempty" jsonschema:"board records in toctree order"`
	Groups []GroupRecord `json:"groups,omitempty" jsonschema:"board-group records"`
}

func handleBoards(source string) mcp.ToolHandlerFor[BoardsInput, BoardsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ BoardsInput) (*mcp.CallToolResult, BoardsOutput, error) {
		tree, cfg, err := loadTree(source)
		if err != nil {
			return nil, BoardsOutput{}, err
		}

		boards, err := guru.Boards(tree, cfg)
		if err != nil {
			return nil, BoardsOutput{}, fmt.Errorf("building boards: %w", err)
		}
		groups, err := guru.BoardGroups(tree, cfg)
		if err != nil {
			return nil, BoardsOutput{}, fmt.Errorf("building board-groups: %w", err)
		}

		var out BoardsOutput
		for _, board := range boards {
			record := BoardRecord{
				Key:         guru.BoardKey(board),
				Title:       board.Title,
				ExternalID:  board.ExternalID,
				ExternalURL: board.ExternalURL,
			}
			for _, item := range board.Items {
				record.Items = append(record.Items, ItemRecord{ID: item.ID, Type: item.Type})
			}
			out.Boards = append(out.Boards, record)
		}
		for _, group := range groups {
			out.Groups = append(out.Groups, GroupRecord{
				Title:       group.Title,
				Boards:      group.Boards,
				ExternalID:  group.ExternalID,
				ExternalURL: group.ExternalURL,
			})
		}
		return nil, out, nil
	}
}

// --- Export tool ---

// ExportInput is the input for the export tool.
type ExportInput struct {
	Out       string `json:"out,omitempty"        jsonschema:"output directory (default <source>/_build/guru)"`
	NoArchive bool   `json:"no_archive,omitempty" jsonschema:"skip writing guru.zip"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	Out         string `json:"out"               jsonschema:"output directory written to"`
	Cards       int    `json:"cards"             jsonschema:"number of card records written"`
	Boards      int    `json:"boards"            jsonschema:"number of board records written"`
	BoardGroups int    `json:"board_groups"      jsonschema:"number of board-group records written"`
	Archive     string `json:"archive,omitempty" jsonschema:"path of the written archive"`
}

func handleExport(source string) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		tree, cfg, err := loadTree(source)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		outDir := input.Out
		if outDir == "" {
			outDir = config.DefaultOutDir(source)
		}

		writer := guru.NewWriter(outDir, nil)
		result, err := guru.Export(tree, cfg, writer, !input.NoArchive)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("exporting: %w", err)
		}

		return nil, ExportOutput{
			Out:         outDir,
			Cards:       result.Cards,
			Boards:      result.Boards,
			BoardGroups: result.BoardGroups,
			Archive:     result.ArchivePath,
		}, nil
	}
}
