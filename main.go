package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"coindash/src/api"
	"coindash/src/config"
	"coindash/src/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Optional in production; local development keeps the API keys in .env.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	var httpServer *http.Server
	if cfg.Service.Type == config.API {
		server, err := api.NewServer(cfg)
		if err != nil {
			return nil, err
		}
		httpServer = api.NewHTTPServer(server, cfg.Service.Port)
	} else {
		server, err := worker.NewServer(cfg)
		if err != nil {
			return nil, err
		}
		httpServer = worker.NewHTTPServer(server, cfg.Service.Port)
	}

	go func() {
		log.Println("Starting server on port", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
