package api

import (
	"context"
	"net/http"
	"time"

	"coindash/src/api/controllers"
	handlers "coindash/src/api/handlers"
	"coindash/src/clients/coingecko"
	"coindash/src/clients/openai"
	"coindash/src/config"
	"coindash/src/database"
	"coindash/src/repositories"
	"coindash/src/schemas"
	"coindash/src/services"
	"coindash/src/stream"
	"coindash/src/utils"
	redis_utils "coindash/src/utils/redis"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Hub     *stream.Hub

	logger *logrus.Logger
	cancel context.CancelFunc
}

func NewServer(cfg *config.Config) (*Server, error) {
	logger := utils.NewLogger(logrus.InfoLevel, false, "")

	pool, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	var redisHandler *redis_utils.RedisHandler
	if cfg.Databases.Redis.Enabled {
		redisHandler, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, falling back to in-process cache")
			redisHandler = nil
		}
	}

	assetRepo := repositories.NewAssetRepository(pool)
	priceRepo := repositories.NewPriceRepository(pool)
	holdingRepo := repositories.NewHoldingRepository(pool)
	alertRepo := repositories.NewAlertRepository(pool)
	settingRepo := repositories.NewSettingRepository(pool)

	priceTTL := time.Duration(cfg.Cache.PriceTTLSeconds) * time.Second
	insightTTL := time.Duration(cfg.Cache.InsightTTLSeconds) * time.Second

	geckoClient := coingecko.NewClient(cfg)
	priceService := services.NewPriceService(assetRepo, priceRepo, geckoClient,
		redisHandler, priceTTL, cfg.Sync.Coins, cfg.Sync.VsCurrency)
	portfolioService := services.NewPortfolioService(holdingRepo, priceRepo, priceService, cfg.Sync.VsCurrency)
	insightService := services.NewInsightService(portfolioService, openai.NewClient(cfg), redisHandler, insightTTL)

	controller := controllers.NewController(priceService, portfolioService, insightService,
		assetRepo, holdingRepo, alertRepo, settingRepo)

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(controller),
		Hub:     stream.NewHub(logger),
		logger:  logger,
	}
	server.InitRoutes()

	ctx, cancel := context.WithCancel(utils.WithLogger(context.Background(), logger))
	server.cancel = cancel
	go server.Hub.Run(ctx)
	go server.pumpTicks(ctx, redisHandler, priceService, priceTTL)

	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
	}).Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/prices", func(r chi.Router) {
		r.Get("/", s.Handler.GetPrices)
		r.Get("/{symbol}", s.Handler.GetPrice)
		r.Get("/{symbol}/history", s.Handler.GetPriceHistory)
	})

	s.Router.Route("/api/holdings", func(r chi.Router) {
		r.Get("/", s.Handler.GetHoldings)
		r.Post("/", s.Handler.CreateHolding)
		r.Put("/{id}", s.Handler.UpdateHolding)
		r.Delete("/{id}", s.Handler.DeleteHolding)
	})

	s.Router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/", s.Handler.GetPortfolio)
		r.Get("/history", s.Handler.GetPortfolioHistory)
		r.Get("/export", s.Handler.ExportPortfolio)
	})

	s.Router.Route("/api/alerts", func(r chi.Router) {
		r.Get("/", s.Handler.GetAlerts)
		r.Post("/", s.Handler.CreateAlert)
		r.Put("/{id}", s.Handler.UpdateAlert)
		r.Delete("/{id}", s.Handler.DeleteAlert)
	})

	s.Router.Route("/api/settings", func(r chi.Router) {
		r.Get("/", s.Handler.GetSettings)
		r.Put("/", s.Handler.UpdateSettings)
	})

	s.Router.Get("/api/insights", s.Handler.GetInsight)

	s.Router.Get("/ws/prices", s.Hub.ServeWS)
}

// pumpTicks feeds the WebSocket hub. With Redis, ticks published by the
// sync worker are forwarded as-is. Without it, the service re-reads the
// price cache on the TTL interval and synthesizes ticks locally.
func (s *Server) pumpTicks(ctx context.Context, redisHandler *redis_utils.RedisHandler, priceService services.PriceServiceI, interval time.Duration) {
	if redisHandler != nil {
		ch, stop := redisHandler.Subscribe(services.PriceTicksChannel)
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				s.Hub.BroadcastRaw(msg)
			}
		}
	}

	if interval < 15*time.Second {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cards, err := priceService.LatestPrices(ctx)
			if err != nil {
				s.logger.WithError(err).Warn("tick refresh failed")
				continue
			}
			for _, card := range cards {
				s.Hub.Broadcast(schemas.PriceTick{
					Symbol:    card.Symbol,
					Price:     card.Price,
					Change24h: card.Change24h,
					Currency:  card.Currency,
					Timestamp: card.UpdatedAt,
				})
			}
		}
	}
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
