package doctree

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// pageSuffix is the extension of source pages.
const pageSuffix = ".md"

// pageMeta is the frontmatter envelope read from each page.
type pageMeta struct {
	Title   string   `yaml:"title"`
	Toctree []string `yaml:"toctree"`
}

// Scan walks the documentation tree rooted at sourceDir and builds its Tree.
// Directories whose name starts with "." or "_" are skipped (build output,
// VCS metadata). Files are visited in lexical walk order, which fixes the
// tree's page and toctree ordering.
func Scan(sourceDir string) (*Tree, error) {
	tree := NewTree()

	err := filepath.WalkDir(sourceDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != sourceDir && isSkippedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), pageSuffix) || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, p)
		if err != nil {
			return err
		}
		docname := strings.TrimSuffix(filepath.ToSlash(rel), pageSuffix)

		return scanPage(tree, p, docname)
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourceDir, err)
	}

	return tree, nil
}

// scanPage reads one page and records its title and toctree declaration.
func scanPage(tree *Tree, filename, docname string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return fmt.Errorf("parsing frontmatter of %s: %w", filename, err)
	}

	title := meta.Title
	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		return fmt.Errorf("page %s has no title: add a heading or a title field", docname)
	}
	tree.AddPage(docname, title)

	if len(meta.Toctree) > 0 {
		tree.AddToctree(docname, resolveEntries(docname, meta.Toctree))
	}
	return nil
}

// resolveEntries maps toctree entries to docnames. Entries are relative to
// the declaring page's directory; a leading separator roots an entry at the
// source directory instead.
func resolveEntries(docname string, entries []string) []string {
	dir := Dir(docname)
	resolved := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSuffix(entry, pageSuffix)
		if rooted, ok := strings.CutPrefix(entry, SEP); ok {
			resolved = append(resolved, rooted)
			continue
		}
		resolved = append(resolved, path.Join(dir, entry))
	}
	return resolved
}

// isSkippedDir reports whether a directory is excluded from the scan.
func isSkippedDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// firstHeading returns the text of the first heading in a markdown body,
// or "" when the body has none.
func firstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Heading); ok {
			title = nodeText(n, body)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

// nodeText collects the plain text of a node's children.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(nodeText(c, source))
		}
	}
	return sb.String()
}
