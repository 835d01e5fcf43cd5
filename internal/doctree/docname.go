package doctree

import "strings"

// SEP is the logical path separator for docnames, independent of the host
// filesystem.
const SEP = "/"

// indexBase is the basename that marks a page as structural.
const indexBase = "index"

// EntityID flattens a docname into a separator-free identifier suitable for
// flat file layouts and cross-record references.
func EntityID(docname string) string {
	return strings.ReplaceAll(docname, SEP, "-")
}

// IsIndex reports whether a docname names an index page, either the root
// index or a directory index.
func IsIndex(docname string) bool {
	return docname == indexBase || strings.HasSuffix(docname, SEP+indexBase)
}

// Dir returns the directory portion of a docname, or "" for a root-level
// page.
func Dir(docname string) string {
	i := strings.LastIndex(docname, SEP)
	if i < 0 {
		return ""
	}
	return docname[:i]
}

// Base returns the final segment of a docname.
func Base(docname string) string {
	i := strings.LastIndex(docname, SEP)
	if i < 0 {
		return docname
	}
	return docname[i+1:]
}

// Segments splits a docname into its path segments.
func Segments(docname string) []string {
	return strings.Split(docname, SEP)
}

// TargetURI returns the site-relative URI for a page. The root index maps
// to the site root; a directory index maps to its directory; any other page
// gets a directory-style URI with a trailing separator.
func TargetURI(docname string) string {
	if docname == indexBase {
		return ""
	}
	if strings.HasSuffix(docname, SEP+indexBase) {
		return strings.TrimSuffix(docname, indexBase)
	}
	return docname + SEP
}
