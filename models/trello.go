package models

// TrelloBoard is a Trello board as returned by the boards listing
type TrelloBoard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TrelloList is a list on a Trello board
type TrelloList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TrelloCard is a created Trello card
type TrelloCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ShortURL string `json:"shortUrl"`
}

// BoardListIdentity is the resolved destination for escalation cards.
// Resolved once per process and cached; not invalidated on board renames.
type BoardListIdentity struct {
	BoardID string
	ListID  string
}
