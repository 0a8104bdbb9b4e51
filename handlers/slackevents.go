package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tagsweep/models"
	slackusecase "tagsweep/usecases/slack"
)

type SlackEventsHandler struct {
	signingSecret string
	slackUseCase  slackusecase.SlackUseCaseInterface
}

func NewSlackEventsHandler(signingSecret string, slackUseCase slackusecase.SlackUseCaseInterface) *SlackEventsHandler {
	return &SlackEventsHandler{
		signingSecret: signingSecret,
		slackUseCase:  slackUseCase,
	}
}

// verifySlackSignature verifies the authenticity of a Slack webhook request
func (h *SlackEventsHandler) verifySlackSignature(r *http.Request, body []byte) error {
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	signature := r.Header.Get("X-Slack-Signature")

	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing required headers")
	}

	// Verify timestamp freshness (within 5 minutes)
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp format: %v", err)
	}
	if time.Now().Unix()-ts > 300 {
		return fmt.Errorf("request timestamp too old")
	}

	// Signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

func (h *SlackEventsHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack event received from %s", r.RemoteAddr)

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

	var body map[string]any
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		log.Printf("❌ Failed to parse JSON body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	if body["type"] == "url_verification" {
		log.Printf("🔐 Slack URL verification challenge received")
		challenge, ok := body["challenge"].(string)
		if !ok {
			log.Printf("❌ Challenge not found in verification request")
			http.Error(w, "challenge not found", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(challenge)); err != nil {
			log.Printf("❌ Failed to write challenge response: %v", err)
		}
		return
	}

	if body["type"] != "event_callback" {
		log.Printf("📋 Non-event callback received: %s", body["type"])
		w.WriteHeader(http.StatusOK)
		return
	}

	// Re-decode just the event into the typed message shape
	var envelope struct {
		Event json.RawMessage `json:"event"`
	}
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil || len(envelope.Event) == 0 {
		log.Printf("❌ Event not found in callback")
		http.Error(w, "event not found", http.StatusBadRequest)
		return
	}

	var eventType struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(envelope.Event, &eventType); err != nil {
		log.Printf("❌ Failed to parse event type: %v", err)
		http.Error(w, "failed to parse event", http.StatusBadRequest)
		return
	}
	if eventType.Type != "message" {
		log.Printf("📋 Ignoring unsupported event type: %s", eventType.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	var msg models.InboundMessage
	if err := json.Unmarshal(envelope.Event, &msg); err != nil {
		log.Printf("❌ Failed to decode message event: %v", err)
		http.Error(w, "failed to decode event", http.StatusBadRequest)
		return
	}

	// Ack immediately; process in the background
	w.WriteHeader(http.StatusOK)

	processingID := uuid.New().String()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("❌ [%s] Panic while processing message event: %v", processingID, r)
			}
		}()
		log.Printf("🔄 [%s] Processing message event %s from channel %s", processingID, msg.TS, msg.Channel)
		if err := h.slackUseCase.ProcessMessageEvent(context.Background(), &msg); err != nil {
			log.Printf("❌ [%s] Failed to process message event: %v", processingID, err)
			return
		}
		log.Printf("✅ [%s] Message event processed", processingID)
	}()
}

func (h *SlackEventsHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/slack/events", h.HandleSlackEvent).Methods("POST")
	log.Printf("✅ POST /slack/events endpoint registered")

	router.HandleFunc("/slack/interactions", h.HandleSlackInteraction).Methods("POST")
	log.Printf("✅ POST /slack/interactions endpoint registered")
}
