package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *ShopifyClient {
	return &ShopifyClient{
		endpoint:   server.URL,
		token:      "shpat_test_token",
		httpClient: server.Client(),
	}
}

func TestShopifyClient_LookupOrderByName(t *testing.T) {
	ctx := context.Background()

	t.Run("found order is decoded with metafields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "shpat_test_token", r.Header.Get("X-Shopify-Access-Token"))

			var body struct {
				Query     string         `json:"query"`
				Variables map[string]any `json:"variables"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, `name:"C#12345" status:any`, body.Variables["query"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"orders":{"edges":[{"node":{
				"id":"gid://shopify/Order/450789469",
				"legacyResourceId":"450789469",
				"name":"C#12345",
				"note":"existing",
				"tags":["NeedPhotoNoShip"],
				"needsFollowUp":{"id":"gid://shopify/Metafield/1","namespace":"custom","key":"needs_follow_up","value":"true"},
				"followUpNotes":null
			}}]}}}`))
		}))
		defer server.Close()

		maybeOrder, err := newTestClient(server).LookupOrderByName(ctx, "C#12345")

		require.NoError(t, err)
		require.True(t, maybeOrder.IsPresent())
		order := maybeOrder.MustGet()
		assert.Equal(t, "C#12345", order.Name)
		assert.Equal(t, "450789469", order.LegacyResourceID)
		require.NotNil(t, order.NeedsFollowUp)
		assert.Equal(t, "true", order.NeedsFollowUp.Value)
		assert.Nil(t, order.FollowUpNotes)
	})

	t.Run("no match returns None", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"orders":{"edges":[]}}}`))
		}))
		defer server.Close()

		maybeOrder, err := newTestClient(server).LookupOrderByName(ctx, "C#99999")

		require.NoError(t, err)
		assert.False(t, maybeOrder.IsPresent())
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":"invalid token"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).LookupOrderByName(ctx, "C#12345")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("top-level GraphQL errors are an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errors":[{"message":"field does not exist"}]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).LookupOrderByName(ctx, "C#12345")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "field does not exist")
	})
}

func TestShopifyClient_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("metafieldsSet userErrors are a hard failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"metafieldsSet":{"metafields":null,
				"userErrors":[{"field":["metafields","0","value"],"message":"Value is invalid"}]}}}`))
		}))
		defer server.Close()

		err := newTestClient(server).SetMetafield(ctx, "gid://shopify/Order/1", "custom", "needs_follow_up", "false")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "metafieldsSet")
		assert.Contains(t, err.Error(), "Value is invalid")
	})

	t.Run("successful tagsRemove", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Variables map[string]any `json:"variables"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "gid://shopify/Order/1", body.Variables["id"])
			assert.Equal(t, []any{"NeedPhotoNoShip", "NeedPhoto"}, body.Variables["tags"])

			w.Write([]byte(`{"data":{"tagsRemove":{"userErrors":[]}}}`))
		}))
		defer server.Close()

		err := newTestClient(server).RemoveTags(ctx, "gid://shopify/Order/1", []string{"NeedPhotoNoShip", "NeedPhoto"})
		require.NoError(t, err)
	})

	t.Run("note read and update round-trip", func(t *testing.T) {
		var updatedNote string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Query     string         `json:"query"`
				Variables map[string]any `json:"variables"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			if input, ok := body.Variables["input"].(map[string]any); ok {
				updatedNote = input["note"].(string)
				w.Write([]byte(`{"data":{"orderUpdate":{"order":{"id":"gid://shopify/Order/1"},"userErrors":[]}}}`))
				return
			}
			w.Write([]byte(`{"data":{"order":{"note":"previous note"}}}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		note, err := client.GetOrderNote(ctx, "gid://shopify/Order/1")
		require.NoError(t, err)
		assert.Equal(t, "previous note", note)

		require.NoError(t, client.UpdateOrderNote(ctx, "gid://shopify/Order/1", "new\n\n\n---\n\n\nprevious note"))
		assert.Equal(t, "new\n\n\n---\n\n\nprevious note", updatedNote)
	})

	t.Run("null note decodes as empty string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"order":{"note":null}}}`))
		}))
		defer server.Close()

		note, err := newTestClient(server).GetOrderNote(ctx, "gid://shopify/Order/1")
		require.NoError(t, err)
		assert.Equal(t, "", note)
	})
}
