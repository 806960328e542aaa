package controllers_test

import (
	"context"
	"errors"
	"testing"

	"coindash/src/utils"
	"coindash/src/worker/controllers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncService struct {
	ticks int
	err   error
	calls int
}

func (s *fakeSyncService) SyncPrices(_ context.Context) (int, error) {
	s.calls++
	return s.ticks, s.err
}

func TestSyncAll(t *testing.T) {
	syncService := &fakeSyncService{ticks: 4}
	controller := controllers.NewController(syncService, []string{"bitcoin", "ethereum"})

	ticks, err := controller.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, ticks)
	assert.Equal(t, 1, syncService.calls)
}

func TestSyncAllPropagatesError(t *testing.T) {
	syncService := &fakeSyncService{err: errors.New("provider down")}
	controller := controllers.NewController(syncService, []string{"bitcoin"})

	_, err := controller.SyncAll(context.Background())
	require.Error(t, err)
}

func TestSyncCoin(t *testing.T) {
	syncService := &fakeSyncService{ticks: 2}
	controller := controllers.NewController(syncService, []string{"bitcoin", "ethereum"})

	t.Run("TrackedCoin", func(t *testing.T) {
		ticks, err := controller.SyncCoin(context.Background(), "Bitcoin")
		require.NoError(t, err)
		assert.Equal(t, 2, ticks)
	})

	t.Run("UntrackedCoin", func(t *testing.T) {
		_, err := controller.SyncCoin(context.Background(), "dogecoin")
		require.Error(t, err)

		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
	})
}
