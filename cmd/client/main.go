package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/anime-verse/internal/adapter"
	"github.com/MKhiriev/anime-verse/internal/client"
	"github.com/MKhiriev/anime-verse/internal/config"
	"github.com/MKhiriev/anime-verse/internal/crypto"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/service"
	"github.com/MKhiriev/anime-verse/internal/store"
	"github.com/MKhiriev/anime-verse/internal/tui"
	"github.com/MKhiriev/anime-verse/internal/workers"
	"github.com/MKhiriev/anime-verse/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("animeverse-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fatal(log, err, "error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		fatal(log, err, "error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, crypto.NewSealer(cfg.App.SealKey), log)
	if err != nil {
		fatal(log, err, "create local storage")
	}
	defer localStorage.Close()

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		fatal(log, err, "create backend adapter")
	}

	catalogAdapter, err := adapter.NewHTTPCatalogAdapter(cfg.Catalog, log)
	if err != nil {
		fatal(log, err, "create catalog adapter")
	}

	services := service.NewClientServices(localStorage, backendAdapter, catalogAdapter, log)
	jobs := workers.NewWorkers(
		workers.NewRefreshWorker(services.Session, cfg.Workers.RefreshInterval, log),
	)

	var app client.Client = client.NewApp(services, jobs, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err = app.Run(ctx, args); err != nil {
		log.Err(err).Str("func", "main").Msg("client run error")
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		_ = localStorage.Close()
		stop()
		os.Exit(1)
	}
}

func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
