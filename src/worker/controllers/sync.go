package controllers

import (
	"context"
	"fmt"
	"strings"

	"coindash/src/utils"
)

// SyncAll runs one sync tick on demand and returns the tick count.
func (c *Controller) SyncAll(ctx context.Context) (int, error) {
	return c.SyncService.SyncPrices(ctx)
}

// SyncCoin validates that the coin is tracked, then runs a sync tick. The
// provider prices all tracked coins in one call, so a single-coin refresh
// costs the same request.
func (c *Controller) SyncCoin(ctx context.Context, coin string) (int, error) {
	tracked := false
	for _, id := range c.Coins {
		if strings.EqualFold(id, coin) {
			tracked = true
			break
		}
	}
	if !tracked {
		return 0, utils.NotFound(fmt.Sprintf("coin %s is not tracked", coin))
	}
	return c.SyncService.SyncPrices(ctx)
}
