package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prices, err := h.Controller.GetPrices(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, prices, http.StatusOK)
}

func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	symbol := chi.URLParam(r, "symbol")
	price, err := h.Controller.GetPrice(ctx, symbol)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, price, http.StatusOK)
}

func (h *Handler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	symbol := chi.URLParam(r, "symbol")
	days, err := daysParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	series, err := h.Controller.GetPriceHistory(ctx, symbol, days)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, series, http.StatusOK)
}
