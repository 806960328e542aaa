package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	portfolio, err := h.Controller.GetPortfolio(ctx, user)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, portfolio, http.StatusOK)
}

func (h *Handler) GetPortfolioHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	days, err := daysParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	series, err := h.Controller.GetPortfolioHistory(ctx, user, days)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, series, http.StatusOK)
}

func (h *Handler) ExportPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio.csv"`)
	if err := h.Controller.ExportPortfolioCSV(ctx, user, w); err != nil {
		// Headers may already be out; log and drop the connection.
		h.HandleErrors(w, err)
	}
}
