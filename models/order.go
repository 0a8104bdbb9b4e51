package models

// OrderMetafield is a namespaced key/value attribute on a Shopify order
type OrderMetafield struct {
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// OrderRecord is the slice of a Shopify order the clear workflow operates on
type OrderRecord struct {
	ID               string   `json:"id"`
	LegacyResourceID string   `json:"legacyResourceId"`
	Name             string   `json:"name"`
	Note             string   `json:"note"`
	Tags             []string `json:"tags"`

	// Follow-up state; nil when the metafield has never been set
	NeedsFollowUp *OrderMetafield `json:"needsFollowUp"`
	FollowUpNotes *OrderMetafield `json:"followUpNotes"`
}

// ClearResult captures the before/after audit trail of a successful
// clear workflow run
type ClearResult struct {
	OrderName   string
	FlagBefore  string
	FlagAfter   string
	NotesBefore string
	HadNotes    bool
	TagsRemoved []string
	AdminURL    string
}
