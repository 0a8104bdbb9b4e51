package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samber/mo"

	"tagsweep/clients"
	"tagsweep/models"
)

const lookupOrderQuery = `
query lookupOrder($query: String!) {
  orders(first: 1, query: $query) {
    edges {
      node {
        id
        legacyResourceId
        name
        note
        tags
        needsFollowUp: metafield(namespace: "custom", key: "needs_follow_up") {
          id
          namespace
          key
          value
        }
        followUpNotes: metafield(namespace: "custom", key: "follow_up_notes") {
          id
          namespace
          key
          value
        }
      }
    }
  }
}`

const setMetafieldMutation = `
mutation setMetafield($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields {
      id
    }
    userErrors {
      field
      message
    }
  }
}`

const deleteMetafieldMutation = `
mutation deleteMetafield($input: MetafieldDeleteInput!) {
  metafieldDelete(input: $input) {
    deletedId
    userErrors {
      field
      message
    }
  }
}`

const removeTagsMutation = `
mutation removeTags($id: ID!, $tags: [String!]!) {
  tagsRemove(id: $id, tags: $tags) {
    userErrors {
      field
      message
    }
  }
}`

const getOrderNoteQuery = `
query getOrderNote($id: ID!) {
  order(id: $id) {
    note
  }
}`

const updateOrderNoteMutation = `
mutation updateOrderNote($input: OrderInput!) {
  orderUpdate(input: $input) {
    order {
      id
    }
    userErrors {
      field
      message
    }
  }
}`

// ShopifyClient implements the clients.ShopifyClient interface against the
// Shopify Admin GraphQL API. GraphQL documents are posted as plain JSON; no
// retry or backoff beyond a single attempt per call.
type ShopifyClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewShopifyClient creates a client for the given store domain and API version
func NewShopifyClient(storeDomain, accessToken, apiVersion string) clients.ShopifyClient {
	return &ShopifyClient{
		endpoint:   fmt.Sprintf("https://%s/admin/api/%s/graphql.json", storeDomain, apiVersion),
		token:      accessToken,
		httpClient: &http.Client{},
	}
}

// userError is a field-scoped error returned by Shopify mutations
type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// userErrorsToError converts a non-empty userErrors list into a hard failure
func userErrorsToError(operation string, errs []userError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		if len(e.Field) > 0 {
			messages = append(messages, fmt.Sprintf("%s: %s", strings.Join(e.Field, "."), e.Message))
		} else {
			messages = append(messages, e.Message)
		}
	}
	return fmt.Errorf("%s returned errors: %s", operation, strings.Join(messages, "; "))
}

// execute posts a GraphQL document and decodes the data payload into out
func (c *ShopifyClient) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shopify API returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to parse GraphQL response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return fmt.Errorf("GraphQL errors: %s", strings.Join(messages, "; "))
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode GraphQL data: %w", err)
		}
	}
	return nil
}

// LookupOrderByName resolves an order by its exact display name across all
// statuses. Returns None when no order matches.
func (c *ShopifyClient) LookupOrderByName(ctx context.Context, name string) (mo.Option[*models.OrderRecord], error) {
	var result struct {
		Orders struct {
			Edges []struct {
				Node models.OrderRecord `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	}

	searchQuery := fmt.Sprintf("name:%q status:any", name)
	if err := c.execute(ctx, lookupOrderQuery, map[string]any{"query": searchQuery}, &result); err != nil {
		return mo.None[*models.OrderRecord](), err
	}

	if len(result.Orders.Edges) == 0 {
		return mo.None[*models.OrderRecord](), nil
	}
	order := result.Orders.Edges[0].Node
	return mo.Some(&order), nil
}

// SetMetafield writes a single-line text metafield on the given owner
func (c *ShopifyClient) SetMetafield(ctx context.Context, ownerID, namespace, key, value string) error {
	var result struct {
		MetafieldsSet struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"metafieldsSet"`
	}

	variables := map[string]any{
		"metafields": []map[string]any{
			{
				"ownerId":   ownerID,
				"namespace": namespace,
				"key":       key,
				"type":      "single_line_text_field",
				"value":     value,
			},
		},
	}
	if err := c.execute(ctx, setMetafieldMutation, variables, &result); err != nil {
		return err
	}
	return userErrorsToError("metafieldsSet", result.MetafieldsSet.UserErrors)
}

// DeleteMetafield removes a metafield entirely by its identifier
func (c *ShopifyClient) DeleteMetafield(ctx context.Context, metafieldID string) error {
	var result struct {
		MetafieldDelete struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"metafieldDelete"`
	}

	variables := map[string]any{
		"input": map[string]any{"id": metafieldID},
	}
	if err := c.execute(ctx, deleteMetafieldMutation, variables, &result); err != nil {
		return err
	}
	return userErrorsToError("metafieldDelete", result.MetafieldDelete.UserErrors)
}

// RemoveTags removes the given tags from an order's tag set
func (c *ShopifyClient) RemoveTags(ctx context.Context, ownerID string, tags []string) error {
	var result struct {
		TagsRemove struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"tagsRemove"`
	}

	variables := map[string]any{"id": ownerID, "tags": tags}
	if err := c.execute(ctx, removeTagsMutation, variables, &result); err != nil {
		return err
	}
	return userErrorsToError("tagsRemove", result.TagsRemove.UserErrors)
}

// GetOrderNote reads the order's current free-text note
func (c *ShopifyClient) GetOrderNote(ctx context.Context, orderID string) (string, error) {
	var result struct {
		Order struct {
			Note string `json:"note"`
		} `json:"order"`
	}

	if err := c.execute(ctx, getOrderNoteQuery, map[string]any{"id": orderID}, &result); err != nil {
		return "", err
	}
	return result.Order.Note, nil
}

// UpdateOrderNote replaces the order's free-text note
func (c *ShopifyClient) UpdateOrderNote(ctx context.Context, orderID, note string) error {
	var result struct {
		OrderUpdate struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"orderUpdate"`
	}

	variables := map[string]any{
		"input": map[string]any{"id": orderID, "note": note},
	}
	if err := c.execute(ctx, updateOrderNoteMutation, variables, &result); err != nil {
		return err
	}
	return userErrorsToError("orderUpdate", result.OrderUpdate.UserErrors)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
