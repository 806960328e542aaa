package handlers

import (
	"context"
	"net/http"
	"time"

	"coindash/src/schemas"
	"coindash/src/utils"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	settings, err := h.Controller.GetSettings(ctx, user)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateSettingsRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	settings, err := h.Controller.UpdateSettings(ctx, user, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}
