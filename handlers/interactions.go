package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"tagsweep/models"
)

// interactionPayload is the slice of Slack's block-action payload we need
type interactionPayload struct {
	Type string `json:"type"`
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	Channel struct {
		ID string `json:"id"`
	} `json:"channel"`
	Container struct {
		MessageTS string `json:"message_ts"`
		ThreadTS  string `json:"thread_ts"`
	} `json:"container"`
	Actions []struct {
		ActionID string `json:"action_id"`
		Value    string `json:"value"`
	} `json:"actions"`
}

// HandleSlackInteraction handles button clicks. Slack requires an immediate
// ack; the selected workflow runs in the background and posts its outcome
// into the prompt's thread.
func (h *SlackEventsHandler) HandleSlackInteraction(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Slack interaction received from %s", r.RemoteAddr)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Interactions arrive form-encoded with the JSON in a payload field
	form, err := url.ParseQuery(string(bodyBytes))
	if err != nil {
		log.Printf("❌ Failed to parse interaction form body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	var payload interactionPayload
	if err := json.Unmarshal([]byte(form.Get("payload")), &payload); err != nil {
		log.Printf("❌ Failed to parse interaction payload: %v", err)
		http.Error(w, "failed to parse payload", http.StatusBadRequest)
		return
	}

	if payload.Type != "block_actions" {
		log.Printf("📋 Ignoring interaction type: %s", payload.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	interaction := models.Interaction{
		Type:      payload.Type,
		UserID:    payload.User.ID,
		ChannelID: payload.Channel.ID,
		MessageTS: payload.Container.MessageTS,
		ThreadTS:  payload.Container.ThreadTS,
	}
	for _, action := range payload.Actions {
		interaction.Actions = append(interaction.Actions, models.InteractionAction{
			ActionID: action.ActionID,
			Value:    action.Value,
		})
	}

	// Ack immediately; the workflow posts its result asynchronously
	w.WriteHeader(http.StatusOK)

	processingID := uuid.New().String()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("❌ [%s] Panic while processing block action: %v", processingID, r)
			}
		}()
		log.Printf("🔄 [%s] Processing block action from user %s", processingID, interaction.UserID)
		if err := h.slackUseCase.ProcessBlockAction(context.Background(), interaction); err != nil {
			log.Printf("❌ [%s] Failed to process block action: %v", processingID, err)
			return
		}
		log.Printf("✅ [%s] Block action processed", processingID)
	}()
}
