package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeDocsTree materializes a small documentation tree for tool tests.
func writeDocsTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"deckhand.yaml":      "published_location: https://docs.example.com\n",
		"index.md":           "---\ntoctree:\n  - guides/index\n---\n# Docs\n",
		"guides/index.md":    "---\ntoctree:\n  - setup\n  - advanced/index\n---\n# Guides\n",
		"guides/setup.md":    "# Setup\n",
		"guides/advanced/index.md": "---\ntoctree:\n  - tuning\n---\n# Advanced\n",
		"guides/advanced/tuning.md": "# Tuning\n",
	}
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestStatusTool(t *testing.T) {
	source := writeDocsTree(t)

	_, out, err := handleStatus(source)(context.Background(), nil, StatusInput{})
	if err != nil {
		t.Fatalf("status tool error = %v", err)
	}

	if out.Pages != 5 {
		t.Errorf("Pages = %d, want 5", out.Pages)
	}
	if out.Toctrees != 3 {
		t.Errorf("Toctrees = %d, want 3", out.Toctrees)
	}
	if out.PublishedLocation != "https://docs.example.com" {
		t.Errorf("PublishedLocation = %q", out.PublishedLocation)
	}
}

func TestCardsTool(t *testing.T) {
	source := writeDocsTree(t)

	_, out, err := handleCards(source)(context.Background(), nil, CardsInput{})
	if err != nil {
		t.Fatalf("cards tool error = %v", err)
	}

	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2 (index pages excluded)", out.Count)
	}

	byID := make(map[string]CardRecord)
	for _, card := range out.Cards {
		byID[card.ExternalID] = card
	}
	setup, ok := byID["guides/setup"]
	if !ok {
		t.Fatal("missing card for guides/setup")
	}
	if setup.ExternalURL != "https://docs.example.com/guides/setup.html" {
		t.Errorf("ExternalURL = %q", setup.ExternalURL)
	}
	if len(setup.Tags) != 1 || setup.Tags[0] != "Engineering:guides" {
		t.Errorf("Tags = %v", setup.Tags)
	}
}

func TestBoardsTool(t *testing.T) {
	source := writeDocsTree(t)

	_, out, err := handleBoards(source)(context.Background(), nil, BoardsInput{})
	if err != nil {
		t.Fatalf("boards tool error = %v", err)
	}

	if len(out.Boards) != 2 {
		t.Fatalf("got %d boards, want 2 (the root toctree has no leaf pages)", len(out.Boards))
	}
	if len(out.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(out.Groups))
	}
	if out.Groups[0].ExternalID != "guides" {
		t.Errorf("group ExternalID = %q, want guides", out.Groups[0].ExternalID)
	}
}

func TestExportTool(t *testing.T) {
	source := writeDocsTree(t)
	outDir := filepath.Join(t.TempDir(), "guru")

	_, out, err := handleExport(source)(context.Background(), nil, ExportInput{Out: outDir})
	if err != nil {
		t.Fatalf("export tool error = %v", err)
	}

	if out.Cards != 2 || out.Boards != 2 || out.BoardGroups != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/2/1", out.Cards, out.Boards, out.BoardGroups)
	}
	if out.Archive == "" {
		t.Error("Archive path should be set when archiving is enabled")
	}
	if _, err := os.Stat(out.Archive); err != nil {
		t.Errorf("archive not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "cards", "guides-setup.yaml")); err != nil {
		t.Errorf("card record not written: %v", err)
	}
}

func TestExportTool_DefaultOutDir(t *testing.T) {
	source := writeDocsTree(t)

	_, out, err := handleExport(source)(context.Background(), nil, ExportInput{NoArchive: true})
	if err != nil {
		t.Fatalf("export tool error = %v", err)
	}

	want := filepath.Join(source, "_build", "guru")
	if out.Out != want {
		t.Errorf("Out = %q, want %q", out.Out, want)
	}
	if out.Archive != "" {
		t.Errorf("Archive = %q, want empty with no_archive", out.Archive)
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("test", writeDocsTree(t))
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
