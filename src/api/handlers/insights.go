package handlers

import (
	"context"
	"net/http"
	"time"
)

func (h *Handler) GetInsight(w http.ResponseWriter, r *http.Request) {
	// Completion calls are slower than the other endpoints.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	insight, err := h.Controller.GetInsight(ctx, user)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, insight, http.StatusOK)
}
