package reminder

import (
	"context"
	"log"
	"strings"

	"tagsweep/clients"
	"tagsweep/models"
)

const previewLength = 140

// ReminderService detects the daily reminder and extracts order mentions,
// fetching uploaded file bodies when the primary corpus comes up empty
type ReminderService struct {
	slackClient clients.SlackClient
}

// NewReminderService creates a new instance of ReminderService
func NewReminderService(slackClient clients.SlackClient) *ReminderService {
	return &ReminderService{slackClient: slackClient}
}

// Detect classifies one inbound message and extracts its order mentions.
// Extraction runs in two passes: first against the primary corpus, then -
// if the message looks like the reminder but no orders were found - against
// the corpus widened with fetched file bodies, re-scanned from scratch.
func (s *ReminderService) Detect(ctx context.Context, msg *models.InboundMessage) models.ReminderDetection {
	corpus := BuildCorpus(msg)
	isReminder := IsDailyReminder(msg, corpus)
	orders := ExtractOrders(corpus)

	if isReminder && len(orders) == 0 && len(msg.Files) > 0 {
		log.Printf("🔍 Reminder recognized but no orders in primary corpus - fetching %d file(s)", len(msg.Files))
		bodies := s.fetchFileBodies(ctx, msg.Files)
		if len(bodies) > 0 {
			widened := corpus + "\n" + strings.Join(bodies, "\n")
			orders = ExtractOrders(widened)
		}
	}

	return models.ReminderDetection{
		IsReminder: isReminder,
		Orders:     orders,
		Preview:    buildPreview(msg),
	}
}

// fetchFileBodies downloads each file's body as text. A failed fetch is
// logged and skipped; it never aborts the remaining files.
func (s *ReminderService) fetchFileBodies(ctx context.Context, files []models.MessageFile) []string {
	var bodies []string
	for _, file := range files {
		if file.URLPrivateDownload == "" {
			continue
		}
		body, err := s.slackClient.DownloadFile(ctx, file.URLPrivateDownload)
		if err != nil {
			log.Printf("⚠️ Failed to fetch file %q: %v", file.Name, err)
			continue
		}
		bodies = append(bodies, body)
	}
	return bodies
}

// buildPreview returns the short preview shown on prompts: the start of the
// message text, else the first file's title, else empty
func buildPreview(msg *models.InboundMessage) string {
	source := msg.Text
	if source == "" && len(msg.Files) > 0 {
		source = msg.Files[0].Title
	}
	runes := []rune(source)
	if len(runes) > previewLength {
		return string(runes[:previewLength])
	}
	return source
}
