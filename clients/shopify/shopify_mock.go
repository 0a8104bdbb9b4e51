package shopify

import (
	"context"

	"github.com/samber/mo"

	"tagsweep/models"
)

// MockShopifyClient implements the clients.ShopifyClient interface for testing
type MockShopifyClient struct {
	MockLookupOrderByName func(ctx context.Context, name string) (mo.Option[*models.OrderRecord], error)
	MockSetMetafield      func(ctx context.Context, ownerID, namespace, key, value string) error
	MockDeleteMetafield   func(ctx context.Context, metafieldID string) error
	MockRemoveTags        func(ctx context.Context, ownerID string, tags []string) error
	MockGetOrderNote      func(ctx context.Context, orderID string) (string, error)
	MockUpdateOrderNote   func(ctx context.Context, orderID, note string) error
}

// NewMockShopifyClient creates a new mock Shopify client
func NewMockShopifyClient() *MockShopifyClient {
	return &MockShopifyClient{}
}

// LookupOrderByName implements the ShopifyClient interface for testing
func (m *MockShopifyClient) LookupOrderByName(ctx context.Context, name string) (mo.Option[*models.OrderRecord], error) {
	if m.MockLookupOrderByName != nil {
		return m.MockLookupOrderByName(ctx, name)
	}
	return mo.None[*models.OrderRecord](), nil
}

// SetMetafield implements the ShopifyClient interface for testing
func (m *MockShopifyClient) SetMetafield(ctx context.Context, ownerID, namespace, key, value string) error {
	if m.MockSetMetafield != nil {
		return m.MockSetMetafield(ctx, ownerID, namespace, key, value)
	}
	return nil
}

// DeleteMetafield implements the ShopifyClient interface for testing
func (m *MockShopifyClient) DeleteMetafield(ctx context.Context, metafieldID string) error {
	if m.MockDeleteMetafield != nil {
		return m.MockDeleteMetafield(ctx, metafieldID)
	}
	return nil
}

// RemoveTags implements the ShopifyClient interface for testing
func (m *MockShopifyClient) RemoveTags(ctx context.Context, ownerID string, tags []string) error {
	if m.MockRemoveTags != nil {
		return m.MockRemoveTags(ctx, ownerID, tags)
	}
	return nil
}

// GetOrderNote implements the ShopifyClient interface for testing
func (m *MockShopifyClient) GetOrderNote(ctx context.Context, orderID string) (string, error) {
	if m.MockGetOrderNote != nil {
		return m.MockGetOrderNote(ctx, orderID)
	}
	return "", nil
}

// UpdateOrderNote implements the ShopifyClient interface for testing
func (m *MockShopifyClient) UpdateOrderNote(ctx context.Context, orderID, note string) error {
	if m.MockUpdateOrderNote != nil {
		return m.MockUpdateOrderNote(ctx, orderID, note)
	}
	return nil
}
