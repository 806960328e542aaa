package worker

import (
	"context"
	"net/http"
	"time"

	"coindash/src/clients/coingecko"
	"coindash/src/config"
	"coindash/src/database"
	"coindash/src/repositories"
	"coindash/src/scheduler"
	"coindash/src/services"
	"coindash/src/utils"
	redis_utils "coindash/src/utils/redis"
	"coindash/src/worker/controllers"
	handlers "coindash/src/worker/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler

	task   *scheduler.ScheduledTask
	logger *logrus.Logger
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
			logger.WithError(err).Warn("redis unavailable, ticks will not reach the API stream")
			redisHandler = nil
		}
	}

	assetRepo := repositories.NewAssetRepository(pool)
	priceRepo := repositories.NewPriceRepository(pool)
	alertRepo := repositories.NewAlertRepository(pool)

	priceTTL := time.Duration(cfg.Cache.PriceTTLSeconds) * time.Second
	priceService := services.NewPriceService(assetRepo, priceRepo, coingecko.NewClient(cfg),
		redisHandler, priceTTL, cfg.Sync.Coins, cfg.Sync.VsCurrency)
	alertService := services.NewAlertService(alertRepo)
	syncService := services.NewSyncService(priceService, alertService, redisHandler)

	controller := controllers.NewController(syncService, cfg.Sync.Coins)
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(controller),
		logger:  logger,
	}
	server.InitRoutes()

	// The periodic fetch loop. On-demand syncs share the same service.
	syncCtx := utils.WithLogger(context.Background(), logger)
	task, err := scheduler.NewScheduledTask(syncCtx, cfg.Sync.CronSpec, func(ctx context.Context) {
		if _, err := syncService.SyncPrices(ctx); err != nil {
			logger.WithError(err).Error("scheduled price sync failed")
		}
	})
	if err != nil {
		return nil, err
	}
	server.task = task

	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Close() {
	if s.task != nil {
		s.task.Cancel()
	}
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Route("/api/sync", func(r chi.Router) {
		r.Post("/all", s.Handler.SyncAll)
		r.Post("/{coin}", s.Handler.SyncCoin)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      server,
	}
	return httpServer
}
