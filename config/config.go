package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	BotToken        string
	SigningSecret   string
	WatchChannelID  string
	AlertWebhookURL string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" && c.SigningSecret != ""
	// Note: WatchChannelID and AlertWebhookURL are optional. An empty
	// WatchChannelID means every message is silently ignored.
}

type ShopifyConfig struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
}

// IsConfigured returns true if all required Shopify configuration is present
func (c ShopifyConfig) IsConfigured() bool {
	return c.StoreDomain != "" && c.AccessToken != ""
}

type TrelloConfig struct {
	APIKey    string
	Token     string
	BoardID   string
	ListID    string
	BoardName string
	ListName  string
}

// IsConfigured returns true if Trello credentials are present along with
// either direct board/list identifiers or resolvable display names
func (c TrelloConfig) IsConfigured() bool {
	if c.APIKey == "" || c.Token == "" {
		return false
	}
	if c.BoardID != "" && c.ListID != "" {
		return true
	}
	return c.BoardName != "" && c.ListName != ""
}

type AppConfig struct {
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	UseStrictConfig    bool // If true, error when any integration is not fully configured

	SlackConfig   SlackConfig
	ShopifyConfig ShopifyConfig
	TrelloConfig  TrelloConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		SlackConfig: SlackConfig{
			BotToken:        os.Getenv("SLACK_BOT_TOKEN"),
			SigningSecret:   os.Getenv("SLACK_SIGNING_SECRET"),
			WatchChannelID:  os.Getenv("SLACK_WATCH_CHANNEL_ID"),
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},

		ShopifyConfig: ShopifyConfig{
			StoreDomain: os.Getenv("SHOPIFY_STORE_DOMAIN"),
			AccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
			APIVersion:  getEnvWithDefault("SHOPIFY_API_VERSION", "2024-07"),
		},

		TrelloConfig: TrelloConfig{
			APIKey:    os.Getenv("TRELLO_API_KEY"),
			Token:     os.Getenv("TRELLO_TOKEN"),
			BoardID:   os.Getenv("TRELLO_BOARD_ID"),
			ListID:    os.Getenv("TRELLO_LIST_ID"),
			BoardName: os.Getenv("TRELLO_BOARD_NAME"),
			ListName:  os.Getenv("TRELLO_LIST_NAME"),
		},
	}

	// Log which integrations are configured
	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack integration configured")
	} else {
		log.Printf("⚠️ Slack integration not configured")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.SlackConfig.WatchChannelID == "" {
		log.Printf("⚠️ SLACK_WATCH_CHANNEL_ID not set - all messages will be ignored")
	}

	if config.ShopifyConfig.IsConfigured() {
		log.Printf("✅ Shopify integration configured")
	} else {
		log.Printf("⚠️ Shopify integration not configured - clear workflow will fail")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("shopify integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.TrelloConfig.IsConfigured() {
		log.Printf("✅ Trello integration configured")
	} else {
		log.Printf("⚠️ Trello integration not configured - escalation will fail")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("trello integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
