package services_test

import (
	"context"
	"testing"

	"coindash/src/models"
	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledAlert(id int, symbol, condition, threshold string) repositories.AlertWithAsset {
	return repositories.AlertWithAsset{
		Alert: models.Alert{
			ID:        id,
			UserID:    "user-1",
			Condition: condition,
			Threshold: decimal.RequireFromString(threshold),
			Enabled:   true,
		},
		Symbol: symbol,
	}
}

func tick(symbol, price string) schemas.PriceTick {
	return schemas.PriceTick{Symbol: symbol, Price: decimal.RequireFromString(price), Currency: "usd"}
}

func TestAlertServiceEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("AboveFires", func(t *testing.T) {
		repo := &fakeAlertRepo{alerts: []repositories.AlertWithAsset{
			enabledAlert(1, "BTC", models.AlertConditionAbove, "60000"),
		}}
		service := services.NewAlertService(repo)

		fired, err := service.Evaluate(ctx, []schemas.PriceTick{tick("BTC", "65000")})
		require.NoError(t, err)
		require.Len(t, fired, 1)
		assert.Equal(t, 1, fired[0].ID)

		// Firing disables the alert and stamps it.
		assert.False(t, repo.alerts[0].Enabled)
		assert.NotNil(t, repo.alerts[0].TriggeredAt)
	})

	t.Run("BelowFires", func(t *testing.T) {
		repo := &fakeAlertRepo{alerts: []repositories.AlertWithAsset{
			enabledAlert(1, "ETH", models.AlertConditionBelow, "3000"),
		}}
		service := services.NewAlertService(repo)

		fired, err := service.Evaluate(ctx, []schemas.PriceTick{tick("ETH", "2950")})
		require.NoError(t, err)
		assert.Len(t, fired, 1)
	})

	t.Run("ThresholdIsInclusive", func(t *testing.T) {
		repo := &fakeAlertRepo{alerts: []repositories.AlertWithAsset{
			enabledAlert(1, "BTC", models.AlertConditionAbove, "65000"),
		}}
		service := services.NewAlertService(repo)

		fired, err := service.Evaluate(ctx, []schemas.PriceTick{tick("BTC", "65000")})
		require.NoError(t, err)
		assert.Len(t, fired, 1)
	})

	t.Run("ConditionNotMet", func(t *testing.T) {
		repo := &fakeAlertRepo{alerts: []repositories.AlertWithAsset{
			enabledAlert(1, "BTC", models.AlertConditionAbove, "70000"),
		}}
		service := services.NewAlertService(repo)

		fired, err := service.Evaluate(ctx, []schemas.PriceTick{tick("BTC", "65000")})
		require.NoError(t, err)
		assert.Empty(t, fired)
		assert.True(t, repo.alerts[0].Enabled)
	})

	t.Run("NoTickForSymbol", func(t *testing.T) {
		repo := &fakeAlertRepo{alerts: []repositories.AlertWithAsset{
			enabledAlert(1, "DOT", models.AlertConditionAbove, "5"),
		}}
		service := services.NewAlertService(repo)

		fired, err := service.Evaluate(ctx, []schemas.PriceTick{tick("BTC", "65000")})
		require.NoError(t, err)
		assert.Empty(t, fired)
	})

	t.Run("FiredAlertDoesNotFireAgain", func(t *testing.T) {
		repo := &fakeAlertRepo{alerts: []repositories.AlertWithAsset{
			enabledAlert(1, "BTC", models.AlertConditionAbove, "60000"),
		}}
		service := services.NewAlertService(repo)

		ticks := []schemas.PriceTick{tick("BTC", "65000")}
		fired, err := service.Evaluate(ctx, ticks)
		require.NoError(t, err)
		require.Len(t, fired, 1)

		fired, err = service.Evaluate(ctx, ticks)
		require.NoError(t, err)
		assert.Empty(t, fired)
	})
}
