// Package guru transforms a documentation tree into Guru knowledge-base
// records: cards, boards, board-groups, and the collection root.
//
// The export runs in two stages. Stage one is an independent per-page
// transform: every non-index page becomes one card. Stage two is a single
// aggregation pass over the complete toctree-inclusion list: each toctree
// with at least one card-bearing page becomes a board, and top-level path
// segments shared by two or more boards become board-groups. Stage two
// requires the full tree, so it only runs after all pages are known.
//
// Both stages are pure functions over an immutable doctree.Tree; all side
// effects live in the Writer and Archive.
//
// # Record layout
//
// Records are YAML files in a flat per-category layout, named by entity id
// (docname with separators flattened to dashes):
//
//	cards/<entity-id>.yaml
//	boards/<entity-id>.yaml
//	board-groups/<entity-id>.yaml
//	collection/.yaml
//
// After all records are written the output directory is zipped to a
// guru.zip sibling, replacing any archive from a previous build.
//
// A record that fails to write is reported as a warning and skipped; the
// build is best-effort per record and never rolls back.
package guru
