// Command run executes a single triage pass over the configured
// inboxes and prints the run report. It is the cron-friendly
// counterpart to the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaymen99/publishing-gmail-automation/internal/automation"
	"github.com/kaymen99/publishing-gmail-automation/internal/config"
	"github.com/kaymen99/publishing-gmail-automation/internal/infrastructure"
	"github.com/kaymen99/publishing-gmail-automation/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatal("infrastructure init failed: ", err)
	}

	if err := infra.Start(); err != nil {
		log.Fatal("infrastructure start failed: ", err)
	}
	infra.Lifecycle.WaitForStartup()

	runtime, err := automation.NewRuntime(ctx, cfg, infra)
	if err != nil {
		log.Fatal("runtime init failed: ", err)
	}

	report, err := workflow.Execute(ctx, runtime)

	if shutdownErr := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); shutdownErr != nil {
		infra.Logger.Error("shutdown failed", "error", shutdownErr)
	}

	if err != nil {
		log.Fatal("triage run failed: ", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		log.Fatal("report encode failed: ", err)
	}
}
