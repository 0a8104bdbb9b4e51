package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tagsweep/clients"
	"tagsweep/models"
)

const defaultBaseURL = "https://api.trello.com/1"

// TrelloClient implements the clients.TrelloClient interface against the
// Trello REST API using key/token query authentication
type TrelloClient struct {
	baseURL    string
	apiKey     string
	token      string
	httpClient *http.Client
}

// NewTrelloClient creates a client with the given API key and token
func NewTrelloClient(apiKey, token string) clients.TrelloClient {
	return &TrelloClient{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		token:      token,
		httpClient: &http.Client{},
	}
}

// doRequest performs one request and decodes the JSON response into out
func (c *TrelloClient) doRequest(ctx context.Context, method, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("key", c.apiKey)
	query.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("trello API returned status %d for %s %s: %s",
			resp.StatusCode, method, path, truncate(string(body), 200))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListOpenBoards fetches the token owner's open boards
func (c *TrelloClient) ListOpenBoards(ctx context.Context) ([]models.TrelloBoard, error) {
	var boards []models.TrelloBoard
	query := url.Values{"filter": {"open"}, "fields": {"id,name"}}
	if err := c.doRequest(ctx, http.MethodGet, "/members/me/boards", query, &boards); err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// ListOpenLists fetches the open lists on a board
func (c *TrelloClient) ListOpenLists(ctx context.Context, boardID string) ([]models.TrelloList, error) {
	var lists []models.TrelloList
	query := url.Values{"filter": {"open"}, "fields": {"id,name"}}
	if err := c.doRequest(ctx, http.MethodGet, "/boards/"+boardID+"/lists", query, &lists); err != nil {
		return nil, fmt.Errorf("failed to list lists for board %s: %w", boardID, err)
	}
	return lists, nil
}

// CreateCard creates one card at the top of the given list
func (c *TrelloClient) CreateCard(ctx context.Context, listID, name, description string) (*models.TrelloCard, error) {
	var card models.TrelloCard
	query := url.Values{
		"idList": {listID},
		"name":   {name},
		"desc":   {description},
		"pos":    {"top"},
	}
	if err := c.doRequest(ctx, http.MethodPost, "/cards", query, &card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return &card, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
