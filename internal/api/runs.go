package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kaymen99/publishing-gmail-automation/internal/workflow"
	"github.com/kaymen99/publishing-gmail-automation/pkg/handlers"
	"github.com/kaymen99/publishing-gmail-automation/pkg/routes"
)

// RunHandler provides the HTTP endpoint that executes a triage run.
type RunHandler struct {
	runtime *workflow.Runtime
	logger  *slog.Logger
}

// RunResponse is the execute endpoint's response body.
type RunResponse struct {
	ID     uuid.UUID        `json:"id"`
	Report *workflow.Report `json:"report"`
}

// NewRunHandler creates a RunHandler with the given runtime and logger.
func NewRunHandler(runtime *workflow.Runtime, logger *slog.Logger) *RunHandler {
	return &RunHandler{
		runtime: runtime,
		logger:  logger.With("handler", "runs"),
	}
}

// Routes returns the route group definition for run execution.
func (h *RunHandler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/execute",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Execute},
		},
	}
}

// Execute drains every configured inbox within the request context and
// returns the run report. Runs are synchronous: the caller's timeout
// bounds the work.
func (h *RunHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := uuid.New()
	h.logger.InfoContext(r.Context(), "triage run started", "run_id", id)

	report, err := workflow.Execute(r.Context(), h.runtime)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.InfoContext(r.Context(), "triage run complete", "run_id", id, "steps", report.Steps)
	handlers.RespondJSON(w, http.StatusOK, RunResponse{ID: id, Report: report})
}
