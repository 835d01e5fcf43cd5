package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCardsCommand_JSON(t *testing.T) {
	source := defaultDocsTree(t)

	stdout, _, err := runCommand(t, "cards", "--source", source, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var cards []map[string]any
	if jsonErr := json.Unmarshal([]byte(stdout), &cards); jsonErr != nil {
		t.Fatalf("output is not JSON: %v\n%s", jsonErr, stdout)
	}
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}

	byID := make(map[string]map[string]any)
	for _, card := range cards {
		byID[card["external_id"].(string)] = card
	}
	tuning, ok := byID["guides/advanced/tuning"]
	if !ok {
		t.Fatal("missing card for guides/advanced/tuning")
	}
	if tuning["external_url"] != "https://docs.example.com/guides/advanced/tuning.html" {
		t.Errorf("external_url = %v", tuning["external_url"])
	}
	tags, _ := tuning["tags"].([]any)
	if len(tags) != 2 {
		t.Errorf("tags = %v, want one per directory segment", tags)
	}
}

func TestCardsCommand_Human(t *testing.T) {
	source := defaultDocsTree(t)

	stdout, _, err := runCommand(t, "cards", "--source", source)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"DOCNAME", "guides/setup", "Setup", "Engineering:guides"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "guides/index") {
		t.Error("index pages must not appear as cards")
	}
}

func TestCardsCommand_EmptyTree(t *testing.T) {
	source := writeDocsTree(t, map[string]string{
		"index.md": "# Docs\n",
	})

	stdout, _, err := runCommand(t, "cards", "--source", source)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "No cards") {
		t.Errorf("output = %q, want empty-tree notice", stdout)
	}
}
