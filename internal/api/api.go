// Package api assembles the API module: triage run execution and
// exemplar management behind API key authentication.
package api

import (
	"context"
	"net/http"

	"github.com/kaymen99/publishing-gmail-automation/internal/automation"
	"github.com/kaymen99/publishing-gmail-automation/internal/config"
	"github.com/kaymen99/publishing-gmail-automation/internal/infrastructure"
	"github.com/kaymen99/publishing-gmail-automation/internal/knowledge"
	"github.com/kaymen99/publishing-gmail-automation/pkg/middleware"
	"github.com/kaymen99/publishing-gmail-automation/pkg/module"
	"github.com/kaymen99/publishing-gmail-automation/pkg/routes"
)

// NewModule creates the API module with all handlers and middleware.
// The workflow runtime is assembled up front so credential problems
// surface at startup.
func NewModule(ctx context.Context, cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := automation.NewRuntime(ctx, cfg, infra)
	if err != nil {
		return nil, err
	}

	logger := infra.Logger.With("module", "api")
	store := knowledge.NewStore(infra.Database.Connection(), infra.Logger)

	mux := http.NewServeMux()
	routes.Register(
		mux,
		NewRunHandler(runtime, logger).Routes(),
		NewExemplarHandler(store, logger).Routes(),
	)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.APIKey(cfg.API.Key))
	m.Use(middleware.Logger(logger))

	return m, nil
}
