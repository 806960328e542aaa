package controllers

import (
	"coindash/src/services"
)

type Controller struct {
	SyncService services.SyncServiceI

	// Coins tracked by the sync loop, from config.
	Coins []string
}

func NewController(syncService services.SyncServiceI, coins []string) *Controller {
	return &Controller{SyncService: syncService, Coins: coins}
}
