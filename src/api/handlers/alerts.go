package handlers

import (
	"context"
	"net/http"
	"time"

	"coindash/src/schemas"
	"coindash/src/utils"
)

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	alerts, err := h.Controller.GetAlerts(ctx, user)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, alerts, http.StatusOK)
}

func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.CreateAlertRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	alert, err := h.Controller.CreateAlert(ctx, user, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, alert, http.StatusCreated)
}

func (h *Handler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
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

	var req schemas.UpdateAlertRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity(err.Error()))
		return
	}

	alert, err := h.Controller.UpdateAlert(ctx, user, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, alert, http.StatusOK)
}

func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Controller.DeleteAlert(ctx, user, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
