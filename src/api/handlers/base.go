package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"coindash/src/api/controllers"
	"coindash/src/repositories"
	"coindash/src/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Controller *controllers.Controller
}

func NewHandler(controller *controllers.Controller) *Handler {
	return &Handler{Controller: controller}
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps service and repository errors onto HTTP responses.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		utils.WriteError(w, httpErr)
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteError(w, utils.NotFound("resource not found"))
		return
	}
	utils.WriteError(w, utils.InternalServerError(err.Error()))
}

// userID scopes holdings, alerts and settings. The dashboard frontend sends
// it in the X-User-ID header.
func userID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if id == "" {
		return "", utils.BadRequest("missing X-User-ID header")
	}
	return id, nil
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, utils.BadRequest("invalid id URL parameter")
	}
	return id, nil
}

// daysParam parses the ?days= query parameter, defaulting to 7 and capping
// at one year.
func daysParam(r *http.Request) (int, error) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return 7, nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 || days > 365 {
		return 0, utils.UnprocessableEntity("days must be an integer between 1 and 365")
	}
	return days, nil
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return utils.BadRequest("invalid request body")
	}
	return nil
}
