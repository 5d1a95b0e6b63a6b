// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/accumulo-proxy-login/internal/adapter"
	"github.com/MKhiriev/accumulo-proxy-login/internal/client"
	"github.com/MKhiriev/accumulo-proxy-login/internal/config"
	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/internal/service"
	"github.com/MKhiriev/accumulo-proxy-login/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("accumulo-proxy-client", "")

	cfg, err := config.GetClientConfig(os.Args[1:])
	var helpErr *config.HelpError
	if errors.As(err, &helpErr) {
		fmt.Println(helpErr.Help)
		return
	}
	if config.IsUsageError(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithLevel(cfg.Log.Level)
	log.Info().
		Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).
		Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	proxyAdapter := adapter.NewThriftProxyAdapter(cfg.Proxy, log)
	services := service.NewClientServices(proxyAdapter, log)

	app, err := client.NewApp(services, cfg.Credentials, log, client.ReportSession(os.Stdout))
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
