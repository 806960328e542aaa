package controllers

import (
	"coindash/src/repositories"
	"coindash/src/services"
)

type Controller struct {
	PriceService     services.PriceServiceI
	PortfolioService services.PortfolioServiceI
	InsightService   services.InsightServiceI

	AssetRepo   repositories.AssetRepository
	HoldingRepo repositories.HoldingRepository
	AlertRepo   repositories.AlertRepository
	SettingRepo repositories.SettingRepository
}

func NewController(
	priceService services.PriceServiceI,
	portfolioService services.PortfolioServiceI,
	insightService services.InsightServiceI,
	assetRepo repositories.AssetRepository,
	holdingRepo repositories.HoldingRepository,
	alertRepo repositories.AlertRepository,
	settingRepo repositories.SettingRepository,
) *Controller {
	return &Controller{
		PriceService:     priceService,
		PortfolioService: portfolioService,
		InsightService:   insightService,
		AssetRepo:        assetRepo,
		HoldingRepo:      holdingRepo,
		AlertRepo:        alertRepo,
		SettingRepo:      settingRepo,
	}
}
