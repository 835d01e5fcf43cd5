package doctree

import "fmt"

// Toctree is one named table-of-contents inclusion: the docname of the page
// that declared it, and the docnames it includes, in declaration order.
type Toctree struct {
	Name  string
	Pages []string
}

// Tree is the scanned model of a documentation tree: a title index plus the
// toctree-inclusion list. It is built once by Scan and read-only afterwards;
// the export transformation takes it as an immutable input.
type Tree struct {
	pages    []string
	titles   map[string]string
	toctrees []Toctree
}

// NewTree returns an empty tree. Most callers use Scan instead; tests build
// trees directly.
func NewTree() *Tree {
	return &Tree{titles: make(map[string]string)}
}

// AddPage records a page and its title. Re-adding a docname updates the
// title without duplicating the page.
func (t *Tree) AddPage(docname, title string) {
	if _, seen := t.titles[docname]; !seen {
		t.pages = append(t.pages, docname)
	}
	t.titles[docname] = title
}

// AddToctree appends a toctree inclusion, preserving declaration order.
func (t *Tree) AddToctree(name string, pages []string) {
	t.toctrees = append(t.toctrees, Toctree{Name: name, Pages: pages})
}

// Pages returns all docnames in scan order.
func (t *Tree) Pages() []string {
	return t.pages
}

// Toctrees returns the toctree inclusions in declaration order.
func (t *Tree) Toctrees() []Toctree {
	return t.toctrees
}

// HasPage reports whether a docname exists in the tree.
func (t *Tree) HasPage(docname string) bool {
	_, ok := t.titles[docname]
	return ok
}

// Title returns the recorded title for a docname. A missing title is a
// precondition violation: every scanned page has one, so a failed lookup
// means a toctree references a page that does not exist.
func (t *Tree) Title(docname string) (string, error) {
	title, ok := t.titles[docname]
	if !ok {
		return "", fmt.Errorf("no title recorded for %q", docname)
	}
	return title, nil
}
