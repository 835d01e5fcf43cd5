// Package doctree models a markdown documentation tree for export.
//
// A documentation tree is a directory of markdown files. Each file is a
// page identified by its docname: the slash-separated relative path without
// the .md extension. Pages named "index" are structural; they carry the
// title of their directory and may declare a toctree.
//
// # Scanning
//
// Scan walks a source directory and produces a Tree:
//
//	tree, err := doctree.Scan("./docs")
//
// For each page the scanner records a title (frontmatter "title:" field, or
// the first heading in the body) and, when the page's frontmatter declares a
// "toctree:" list, an ordered toctree inclusion. Toctree entries are
// resolved relative to the declaring page's directory.
//
// # Ordering
//
// The Tree preserves two orderings that downstream export depends on:
// pages in scanner walk order, and toctree inclusions in declaration order.
// Both are deterministic for a given tree on disk, which keeps repeated
// exports byte-identical.
package doctree
