package reminder

import (
	"strings"

	"tagsweep/models"
)

// BuildCorpus assembles a single searchable text blob from every shape the
// email integration may have rendered the reminder into. All contributions
// are concatenated in a fixed order; nothing short-circuits anything else.
func BuildCorpus(msg *models.InboundMessage) string {
	var parts []string

	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Title != "" {
			parts = append(parts, attachment.Title)
		}
		if attachment.Text != "" {
			parts = append(parts, attachment.Text)
		}
		if attachment.Fallback != "" {
			parts = append(parts, attachment.Fallback)
		}
	}

	for _, block := range msg.Blocks {
		switch block.Type {
		case "section", "header":
			if block.Text != "" {
				parts = append(parts, block.Text)
			}
		case "rich_text":
			// Raw structural dump so order tokens buried in nested
			// elements are still visible to a plain-text scan
			if dump := block.RawDump(); dump != "" {
				parts = append(parts, dump)
			}
		}
	}

	for _, file := range msg.Files {
		if file.Title != "" {
			parts = append(parts, file.Title)
		}
		if file.Name != "" {
			parts = append(parts, file.Name)
		}
	}

	if msg.InitialComment != "" {
		parts = append(parts, msg.InitialComment)
	}

	return strings.Join(parts, "\n")
}
