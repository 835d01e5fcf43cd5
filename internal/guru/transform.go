package guru

import (
	"path"
	"strings"

	"github.com/gorewood/deckhand/internal/config"
	"github.com/gorewood/deckhand/internal/doctree"
)

// CardFor builds the card record for one page. Tags carry the namespaced
// directory segments of the docname in order; a root-level page has none.
func CardFor(tree *doctree.Tree, cfg *config.Config, docname string) (*Card, error) {
	title, err := tree.Title(docname)
	if err != nil {
		return nil, err
	}

	var tags []string
	if dir := doctree.Dir(docname); dir != "" {
		for _, seg := range doctree.Segments(dir) {
			tags = append(tags, TagNamespace+seg)
		}
	}

	return &Card{
		Title:       title,
		Tags:        tags,
		ExternalID:  docname,
		ExternalURL: cfg.ExternalURL(docname),
	}, nil
}

// Cards builds card records for every non-index page, in page order.
func Cards(tree *doctree.Tree, cfg *config.Config) ([]*Card, error) {
	var cards []*Card
	for _, docname := range tree.Pages() {
		if doctree.Base(docname) == "index" {
			continue
		}
		card, err := CardFor(tree, cfg, docname)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Boards builds one board per toctree that directly includes at least one
// leaf page. Items preserve inclusion order; toctrees whose inclusions are
// all directory indexes produce no board.
func Boards(tree *doctree.Tree, cfg *config.Config) ([]*Board, error) {
	var boards []*Board
	for _, tc := range tree.Toctrees() {
		items := boardItems(tc.Pages)
		if len(items) == 0 {
			continue
		}

		title, err := breadcrumbTitle(tree, tc.Name)
		if err != nil {
			return nil, err
		}

		boards = append(boards, &Board{
			Title:       title,
			Description: "",
			Items:       items,
			ExternalID:  tc.Name,
			ExternalURL: cfg.ExternalURL(tc.Name),
		})
	}
	return boards, nil
}

// BoardGroups clusters boards by their top-level path segment. Only
// segments holding two or more boards are emitted; singleton boards stand
// alone. Group order follows first appearance in the toctree list.
func BoardGroups(tree *doctree.Tree, cfg *config.Config) ([]*BoardGroup, error) {
	members := make(map[string][]string)
	var order []string
	for _, tc := range tree.Toctrees() {
		if !hasLeafPage(tc.Pages) {
			continue
		}
		top := doctree.Segments(tc.Name)[0]
		if _, seen := members[top]; !seen {
			order = append(order, top)
		}
		members[top] = append(members[top], strings.ReplaceAll(tc.Name, "/index", ""))
	}

	var groups []*BoardGroup
	for _, top := range order {
		boards := members[top]
		if len(boards) <= 1 {
			continue
		}

		title, err := tree.Title(path.Join(top, "index"))
		if err != nil {
			return nil, err
		}

		ids := make([]string, len(boards))
		for i, board := range boards {
			ids[i] = doctree.EntityID(board)
		}

		groups = append(groups, &BoardGroup{
			Title:       title,
			Description: "",
			Boards:      ids,
			ExternalID:  top,
			ExternalURL: cfg.ExternalURL("index"),
		})
	}
	return groups, nil
}

// BoardKey returns the record key for a board: the entity id of the
// toctree name's directory. The root toctree keys to the empty id.
func BoardKey(board *Board) string {
	return doctree.EntityID(doctree.Dir(board.ExternalID))
}

// boardItems maps the leaf pages of a toctree to card items, preserving
// inclusion order.
func boardItems(pages []string) []Item {
	var items []Item
	for _, page := range pages {
		if strings.HasSuffix(page, doctree.SEP+"index") {
			continue
		}
		items = append(items, Item{ID: doctree.EntityID(page), Type: ItemTypeCard})
	}
	return items
}

// hasLeafPage reports whether any included page is a leaf (not a
// directory index).
func hasLeafPage(pages []string) bool {
	for _, page := range pages {
		if !strings.HasSuffix(page, doctree.SEP+"index") {
			return true
		}
	}
	return false
}

// breadcrumbTitle joins the titles of a toctree's ancestor index pages with
// its own title. The chain covers segments[0:i]/index for i up to the
// toctree's grandparent depth.
func breadcrumbTitle(tree *doctree.Tree, name string) (string, error) {
	segs := doctree.Segments(name)

	var parts []string
	for i := 1; i <= len(segs)-2; i++ {
		title, err := tree.Title(strings.Join(segs[:i], doctree.SEP) + doctree.SEP + "index")
		if err != nil {
			return "", err
		}
		parts = append(parts, title)
	}

	own, err := tree.Title(name)
	if err != nil {
		return "", err
	}
	parts = append(parts, own)

	return strings.Join(parts, " - "), nil
}
