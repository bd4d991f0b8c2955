package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":7,"name":"Widget","price":"29.99","stock":10,"is_active":true}}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, time.Second)
	product, err := client.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, uint(7), product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "29.99", product.Price.StringFixed(2))
	assert.Equal(t, 10, product.Stock)
	assert.True(t, product.IsActive)
}

func TestGetProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, time.Second)
	product, err := client.GetProduct(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetProductMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, time.Second)
	product, err := client.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetProductMissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"something":"else"}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, time.Second)
	product, err := client.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGetProductTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, 20*time.Millisecond)
	product, err := client.GetProduct(context.Background(), 1)
	require.NoError(t, err, "timeouts collapse to unavailable, not errors")
	assert.Nil(t, product)
}

func TestGetProductServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewCatalogClient(server.URL, time.Second)
	product, err := client.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, product)
}
