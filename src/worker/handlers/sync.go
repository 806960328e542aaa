package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type syncResult struct {
	Ticks int `json:"ticks"`
}

func (h *Handler) SyncAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	ticks, err := h.Controller.SyncAll(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, syncResult{Ticks: ticks}, http.StatusOK)
}

func (h *Handler) SyncCoin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	coin := chi.URLParam(r, "coin")
	ticks, err := h.Controller.SyncCoin(ctx, coin)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, syncResult{Ticks: ticks}, http.StatusOK)
}
