package models

import "encoding/json"

// InboundMessage is the union of fields a Slack message event may carry.
// The daily reminder email arrives in several shapes depending on how the
// email integration rendered it - inline text, legacy attachments, block
// kit blocks, or an uploaded file - so all of them are modeled explicitly.
type InboundMessage struct {
	Channel        string              `json:"channel"`
	User           string              `json:"user"`
	Text           string              `json:"text"`
	TS             string              `json:"ts"`
	ThreadTS       string              `json:"thread_ts"`
	Subtype        string              `json:"subtype"`
	Attachments    []MessageAttachment `json:"attachments"`
	Blocks         []MessageBlock      `json:"blocks"`
	Files          []MessageFile       `json:"files"`
	InitialComment string              `json:"initial_comment"`
}

// MessageAttachment is a legacy Slack attachment (the email integration's
// preferred rendering - the email subject lands in Title)
type MessageAttachment struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Fallback string `json:"fallback"`
}

// MessageBlock is a block kit block. Only the type and any nested plain
// text payload are decoded; Raw keeps the full block JSON so rich_text
// structure can still be scanned for order tokens.
type MessageBlock struct {
	Type string
	Text string
	Raw  json.RawMessage
}

func (b *MessageBlock) UnmarshalJSON(data []byte) error {
	var shape struct {
		Type string `json:"type"`
		Text *struct {
			Text string `json:"text"`
		} `json:"text"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}
	b.Type = shape.Type
	if shape.Text != nil {
		b.Text = shape.Text.Text
	}
	b.Raw = append([]byte(nil), data...)
	return nil
}

// RawDump returns a structural dump of the block for plain-text scanning.
// Serialization failures are swallowed - an empty string is returned.
func (b *MessageBlock) RawDump() string {
	if len(b.Raw) > 0 {
		return string(b.Raw)
	}
	data, err := json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text,omitempty"`
	}{Type: b.Type, Text: b.Text})
	if err != nil {
		return ""
	}
	return string(data)
}

// MessageFile is a file uploaded alongside a message (the email body, when
// the integration decided it was too large to inline)
type MessageFile struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Name               string `json:"name"`
	URLPrivateDownload string `json:"url_private_download"`
}
