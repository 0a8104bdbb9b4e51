package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	shopifyclient "tagsweep/clients/shopify"
	slackclient "tagsweep/clients/slack"
	trelloclient "tagsweep/clients/trello"
	"tagsweep/config"
	"tagsweep/handlers"
	"tagsweep/middleware"
	"tagsweep/services/escalation"
	"tagsweep/services/orders"
	"tagsweep/services/reminder"
	slackusecase "tagsweep/usecases/slack"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "tagsweep",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize external clients
	slackAPI := slackclient.NewSlackClient(cfg.SlackConfig.BotToken)
	shopifyAPI := shopifyclient.NewShopifyClient(
		cfg.ShopifyConfig.StoreDomain,
		cfg.ShopifyConfig.AccessToken,
		cfg.ShopifyConfig.APIVersion,
	)
	trelloAPI := trelloclient.NewTrelloClient(cfg.TrelloConfig.APIKey, cfg.TrelloConfig.Token)

	// Initialize services
	reminderService := reminder.NewReminderService(slackAPI)
	ordersService := orders.NewOrdersService(shopifyAPI, cfg.ShopifyConfig.StoreDomain)
	escalationService := escalation.NewEscalationService(
		trelloAPI,
		cfg.TrelloConfig.BoardID,
		cfg.TrelloConfig.ListID,
		cfg.TrelloConfig.BoardName,
		cfg.TrelloConfig.ListName,
	)

	slackUseCase := slackusecase.NewSlackUseCase(
		slackAPI,
		reminderService,
		ordersService,
		escalationService,
		cfg.SlackConfig.WatchChannelID,
	)
	slackHandler := handlers.NewSlackEventsHandler(cfg.SlackConfig.SigningSecret, slackUseCase)

	// Eagerly resolve the Trello destination; failure here is logged and
	// resolution is retried lazily on first escalation
	go func() {
		_ = alertMiddleware.WrapBackgroundTask("TrelloBoardListWarmup", func() error {
			escalationService.WarmupBoardList(context.Background())
			return nil
		})()
	}()

	// Create a new router
	router := mux.NewRouter()
	slackHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
