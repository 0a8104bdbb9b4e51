package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tagsweep/models"
)

func TestBuildCorpus(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		msg := &models.InboundMessage{Text: "hello world"}
		assert.Equal(t, "hello world", BuildCorpus(msg))
	})

	t.Run("empty message", func(t *testing.T) {
		assert.Equal(t, "", BuildCorpus(&models.InboundMessage{}))
	})

	t.Run("attachment title, text and fallback all contribute", func(t *testing.T) {
		msg := &models.InboundMessage{
			Attachments: []models.MessageAttachment{
				{Title: "Subject line", Text: "body text", Fallback: "fallback text"},
			},
		}
		assert.Equal(t, "Subject line\nbody text\nfallback text", BuildCorpus(msg))
	})

	t.Run("concatenation order is text, attachments, blocks, files, initial comment", func(t *testing.T) {
		msg := &models.InboundMessage{
			Text: "primary",
			Attachments: []models.MessageAttachment{
				{Title: "att-title"},
			},
			Blocks: []models.MessageBlock{
				{Type: "section", Text: "section text"},
			},
			Files: []models.MessageFile{
				{Title: "file-title", Name: "file-name.eml"},
			},
			InitialComment: "a comment",
		}
		assert.Equal(t, "primary\natt-title\nsection text\nfile-title\nfile-name.eml\na comment", BuildCorpus(msg))
	})

	t.Run("header block text contributes", func(t *testing.T) {
		msg := &models.InboundMessage{
			Blocks: []models.MessageBlock{
				{Type: "header", Text: "Daily Reminder"},
			},
		}
		assert.Equal(t, "Daily Reminder", BuildCorpus(msg))
	})

	t.Run("rich_text block contributes raw structural dump", func(t *testing.T) {
		msg := &models.InboundMessage{
			Blocks: []models.MessageBlock{
				{Type: "rich_text", Raw: []byte(`{"type":"rich_text","elements":[{"text":"C#12345"}]}`)},
			},
		}
		corpus := BuildCorpus(msg)
		assert.Contains(t, corpus, "C#12345")
	})

	t.Run("unknown block types are skipped", func(t *testing.T) {
		msg := &models.InboundMessage{
			Text: "primary",
			Blocks: []models.MessageBlock{
				{Type: "divider"},
				{Type: "image"},
			},
		}
		assert.Equal(t, "primary", BuildCorpus(msg))
	})

	t.Run("duplicate lines are not deduplicated", func(t *testing.T) {
		msg := &models.InboundMessage{
			Text: "same",
			Attachments: []models.MessageAttachment{
				{Title: "same"},
			},
		}
		assert.Equal(t, "same\nsame", BuildCorpus(msg))
	})
}
