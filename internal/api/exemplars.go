package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kaymen99/publishing-gmail-automation/internal/knowledge"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
	"github.com/kaymen99/publishing-gmail-automation/pkg/handlers"
	"github.com/kaymen99/publishing-gmail-automation/pkg/routes"
)

// ExemplarHandler provides HTTP endpoints for managing the reply
// exemplars that ground augmented generation.
type ExemplarHandler struct {
	store  *knowledge.Store
	logger *slog.Logger
}

// ExemplarRequest is the ingestion request body.
type ExemplarRequest struct {
	Inquiry string `json:"inquiry"`
	Reply   string `json:"reply"`
}

// NewExemplarHandler creates an ExemplarHandler with the given store and logger.
func NewExemplarHandler(store *knowledge.Store, logger *slog.Logger) *ExemplarHandler {
	return &ExemplarHandler{
		store:  store,
		logger: logger.With("handler", "exemplars"),
	}
}

// Routes returns the route group definition for exemplar endpoints.
func (h *ExemplarHandler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/exemplars",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Add},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Remove},
		},
	}
}

// List returns every stored exemplar.
func (h *ExemplarHandler) List(w http.ResponseWriter, r *http.Request) {
	exemplars, err := h.store.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, exemplars)
}

// Add ingests a reply exemplar. The inquiry must belong to the closed
// inquiry set so retrieval queries can ever match it.
func (h *ExemplarHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req ExemplarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if _, err := triage.ParseInquiry(req.Inquiry); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Reply) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("reply required"))
		return
	}

	exemplar, err := h.store.Add(r.Context(), req.Inquiry, req.Reply)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, knowledge.ErrDuplicate) {
			status = http.StatusConflict
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, exemplar)
}

// Remove deletes the exemplar identified by the UUID path parameter.
func (h *ExemplarHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, knowledge.ErrNotFound)
		return
	}

	if err := h.store.Remove(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, knowledge.ErrNotFound) {
			status = http.StatusNotFound
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
