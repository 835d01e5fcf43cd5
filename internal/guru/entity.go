package guru

// Record field names are fixed by the downstream Guru importer; the yaml
// tags preserve its exact capitalization.

// ItemTypeCard is the type tag for card items on a board.
const ItemTypeCard = "card"

// TagNamespace prefixes every directory-derived card tag.
const TagNamespace = "Engineering:"

// Card is the per-page metadata record. One card is exported for every
// non-index page.
type Card struct {
	Title       string   `yaml:"Title"`
	Tags        []string `yaml:"Tags"`
	ExternalID  string   `yaml:"ExternalId"`
	ExternalURL string   `yaml:"ExternalUrl"`
}

// Item is one board entry referencing a card by entity id.
type Item struct {
	ID   string `yaml:"ID"`
	Type string `yaml:"Type"`
}

// Board groups the cards directly included by one toctree. Description is a
// placeholder field the importer requires; it is always empty.
type Board struct {
	Title       string `yaml:"Title"`
	Description string `yaml:"Description"`
	Items       []Item `yaml:"Items"`
	ExternalID  string `yaml:"ExternalId"`
	ExternalURL string `yaml:"ExternalUrl"`
}

// BoardGroup clusters the boards sharing one top-level path segment.
type BoardGroup struct {
	Title       string   `yaml:"Title"`
	Description string   `yaml:"Description"`
	Boards      []string `yaml:"Boards"`
	ExternalID  string   `yaml:"ExternalId"`
	ExternalURL string   `yaml:"ExternalUrl"`
}

// Collection is the synthetic root container. Exactly one is exported per
// build, with an empty tag list.
type Collection struct {
	Tags []string `yaml:"Tags"`
}
