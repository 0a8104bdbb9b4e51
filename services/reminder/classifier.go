package reminder

import (
	"regexp"
	"strings"

	"tagsweep/models"
)

// ReminderSubject is the exact subject line of the recurring daily reminder email
const ReminderSubject = "Daily Reminder to Remove NeedPhotoNoShip Tag and Follow-Up Metafields as Needed"

var (
	// Unicode hyphen-like characters (hyphen variants, en/em dashes,
	// minus sign) normalized to a plain hyphen before content matching
	hyphenPattern = regexp.MustCompile("[‐‑‒–—―−]")

	dailyReminderPattern = regexp.MustCompile(`(?i)daily[\s-]*reminder`)
	needPhotoPattern     = regexp.MustCompile(`(?i)need[\s-]*photo`)
	subjectPrefixPattern = regexp.MustCompile(`(?i)^subject:\s*`)
)

// DeriveSubject extracts a subject string from a message: the first
// attachment's title if present, else the first line of the primary text
// with any leading "Subject:" prefix stripped.
func DeriveSubject(msg *models.InboundMessage) string {
	if len(msg.Attachments) > 0 && msg.Attachments[0].Title != "" {
		return msg.Attachments[0].Title
	}

	firstLine, _, _ := strings.Cut(msg.Text, "\n")
	firstLine = strings.TrimSpace(firstLine)
	if loc := subjectPrefixPattern.FindStringIndex(firstLine); loc != nil {
		return strings.TrimSpace(firstLine[loc[1]:])
	}
	return firstLine
}

// SubjectMatches reports whether the derived subject equals the fixed
// reminder subject, case-insensitively
func SubjectMatches(msg *models.InboundMessage) bool {
	return strings.EqualFold(DeriveSubject(msg), ReminderSubject)
}

// ContentMatches is the fuzzy fallback: after hyphen normalization the
// corpus must mention both "daily reminder" and "need photo" (internal
// whitespace or hyphens allowed, so "needphoto" also counts)
func ContentMatches(corpus string) bool {
	normalized := hyphenPattern.ReplaceAllString(corpus, "-")
	return dailyReminderPattern.MatchString(normalized) && needPhotoPattern.MatchString(normalized)
}

// IsDailyReminder reports whether a message is the recurring daily reminder,
// by exact subject match or by the content heuristic
func IsDailyReminder(msg *models.InboundMessage, corpus string) bool {
	return SubjectMatches(msg) || ContentMatches(corpus)
}
