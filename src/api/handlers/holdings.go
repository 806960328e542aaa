package handlers

import (
	"context"
	"net/http"
	"time"

	"coindash/src/schemas"
	"coindash/src/utils"
)

func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	holdings, err := h.Controller.GetHoldings(ctx, user)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.CreateHoldingRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	holding, err := h.Controller.CreateHolding(ctx, user, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holding, http.StatusCreated)
}

func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateHoldingRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	holding, err := h.Controller.UpdateHolding(ctx, user, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holding, http.StatusOK)
}

func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.DeleteHolding(ctx, user, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
