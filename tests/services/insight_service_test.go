package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/services"
	"coindash/src/utils"

	openai_test "coindash/tests/clients/openai"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightServiceGenerateInsight(t *testing.T) {
	holdingRepo := &fakeHoldingRepo{holdings: []repositories.HoldingWithAsset{
		holdingWithAsset(1, "user-1", "BTC", "Bitcoin", "0.5", "20000"),
	}}
	priceService := &fakePriceService{cards: []schemas.PriceCard{
		{Symbol: "BTC", Name: "Bitcoin", Price: decimal.RequireFromString("60000"), Currency: "usd"},
	}}
	portfolioService := services.NewPortfolioService(holdingRepo, newFakePriceRepo(), priceService, "usd")
	client := openai_test.NewMockClient()
	service := services.NewInsightService(portfolioService, client, nil, time.Minute)

	ctx := context.Background()
	resp, err := service.GenerateInsight(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, client.Summary, resp.Summary)
	assert.False(t, resp.Cached)

	// The prompt carries the portfolio numbers, not raw floats.
	require.Len(t, client.Prompts, 1)
	assert.Contains(t, client.Prompts[0], "30000.00")
	assert.Contains(t, client.Prompts[0], "BTC")

	// Second call within the TTL is served from cache.
	resp, err = service.GenerateInsight(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Len(t, client.Prompts, 1)
}

func TestInsightServiceEmptyPortfolio(t *testing.T) {
	portfolioService := services.NewPortfolioService(&fakeHoldingRepo{}, newFakePriceRepo(), &fakePriceService{}, "usd")
	service := services.NewInsightService(portfolioService, openai_test.NewMockClient(), nil, time.Minute)

	_, err := service.GenerateInsight(context.Background(), "user-1")
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestInsightServiceClientFailure(t *testing.T) {
	holdingRepo := &fakeHoldingRepo{holdings: []repositories.HoldingWithAsset{
		holdingWithAsset(1, "user-1", "BTC", "Bitcoin", "1", "50000"),
	}}
	portfolioService := services.NewPortfolioService(holdingRepo, newFakePriceRepo(), &fakePriceService{}, "usd")
	client := openai_test.NewMockClient()
	client.Err = errors.New("quota exceeded")
	service := services.NewInsightService(portfolioService, client, nil, time.Minute)

	_, err := service.GenerateInsight(context.Background(), "user-1")
	require.Error(t, err)

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Code)
}

func TestInsightServiceCacheExpires(t *testing.T) {
	holdingRepo := &fakeHoldingRepo{holdings: []repositories.HoldingWithAsset{
		holdingWithAsset(1, "user-1", "BTC", "Bitcoin", "1", "50000"),
	}}
	priceService := &fakePriceService{cards: []schemas.PriceCard{
		{Symbol: "BTC", Name: "Bitcoin", Price: decimal.RequireFromString("60000"), Currency: "usd"},
	}}
	portfolioService := services.NewPortfolioService(holdingRepo, newFakePriceRepo(), priceService, "usd")
	client := openai_test.NewMockClient()
	service := services.NewInsightService(portfolioService, client, nil, time.Millisecond)

	ctx := context.Background()
	_, err := service.GenerateInsight(ctx, "user-1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	resp, err := service.GenerateInsight(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Len(t, client.Prompts, 2)
}
