package doctree

import (
	"reflect"
	"testing"
)

func TestTree_PagesPreserveInsertionOrder(t *testing.T) {
	tree := NewTree()
	tree.AddPage("index", "Home")
	tree.AddPage("guides/index", "Guides")
	tree.AddPage("guides/setup", "Setup")

	want := []string{"index", "guides/index", "guides/setup"}
	if got := tree.Pages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pages() = %v, want %v", got, want)
	}
}

func TestTree_AddPageTwiceUpdatesTitle(t *testing.T) {
	tree := NewTree()
	tree.AddPage("guides/setup", "Setup")
	tree.AddPage("guides/setup", "Installation")

	if got := len(tree.Pages()); got != 1 {
		t.Fatalf("Pages() has %d entries, want 1", got)
	}

	title, err := tree.Title("guides/setup")
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if title != "Installation" {
		t.Errorf("Title() = %q, want %q", title, "Installation")
	}
}

func TestTree_TitleMissing(t *testing.T) {
	tree := NewTree()

	if _, err := tree.Title("ghost"); err == nil {
		t.Error("Title() for unknown docname should error")
	}
}

func TestTree_ToctreesPreserveDeclarationOrder(t *testing.T) {
	tree := NewTree()
	tree.AddToctree("index", []string{"guides/index", "reference/index"})
	tree.AddToctree("guides/index", []string{"guides/setup", "guides/teardown"})

	toctrees := tree.Toctrees()
	if len(toctrees) != 2 {
		t.Fatalf("Toctrees() has %d entries, want 2", len(toctrees))
	}
	if toctrees[0].Name != "index" || toctrees[1].Name != "guides/index" {
		t.Errorf("toctree order = [%s, %s], want declaration order", toctrees[0].Name, toctrees[1].Name)
	}
	if !reflect.DeepEqual(toctrees[1].Pages, []string{"guides/setup", "guides/teardown"}) {
		t.Errorf("toctree pages = %v, want source order preserved", toctrees[1].Pages)
	}
}
