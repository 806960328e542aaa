package repositories_test

import (
	"context"
	"testing"

	"coindash/src/models"
	"coindash/src/repositories"

	"coindash/tests/init_test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRepository(t *testing.T) {
	db := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, db)

	repo := repositories.NewAssetRepository(db)
	ctx := context.Background()

	t.Run("Upsert and GetBySlug", func(t *testing.T) {
		asset := &models.Asset{
			Slug:   "bitcoin",
			Symbol: "BTC",
			Name:   "Bitcoin",
			Active: true,
		}
		err := repo.Upsert(ctx, asset, nil)
		require.NoError(t, err)
		assert.NotZero(t, asset.ID)

		found, err := repo.GetBySlug(ctx, "bitcoin")
		require.NoError(t, err)
		assert.Equal(t, asset.ID, found.ID)
		assert.Equal(t, "BTC", found.Symbol)
	})

	t.Run("UpsertKeepsID", func(t *testing.T) {
		asset := &models.Asset{Slug: "ethereum", Symbol: "ETH", Name: "Ethereum", Active: true}
		err := repo.Upsert(ctx, asset, nil)
		require.NoError(t, err)
		firstID := asset.ID

		renamed := &models.Asset{Slug: "ethereum", Symbol: "ETH", Name: "Ethereum Mainnet", Active: true}
		err = repo.Upsert(ctx, renamed, nil)
		require.NoError(t, err)
		assert.Equal(t, firstID, renamed.ID)

		found, err := repo.GetBySlug(ctx, "ethereum")
		require.NoError(t, err)
		assert.Equal(t, "Ethereum Mainnet", found.Name)
	})

	t.Run("GetBySymbolCaseInsensitive", func(t *testing.T) {
		found, err := repo.GetBySymbol(ctx, "btc")
		require.NoError(t, err)
		assert.Equal(t, "bitcoin", found.Slug)
	})

	t.Run("GetBySymbolNotFound", func(t *testing.T) {
		_, err := repo.GetBySymbol(ctx, "DOGE")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("GetAll", func(t *testing.T) {
		assets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.Equal(t, "BTC", assets[0].Symbol)
		assert.Equal(t, "ETH", assets[1].Symbol)
	})
}
