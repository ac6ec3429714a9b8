package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpctx "github.com/dtroode/devserve/internal/api/http/context"
	"github.com/dtroode/devserve/internal/api/http/handler"
	"github.com/dtroode/devserve/internal/api/http/middleware"
	"github.com/dtroode/devserve/internal/api/http/router"
	"github.com/dtroode/devserve/internal/app"
	"github.com/dtroode/devserve/internal/cert"
	"github.com/dtroode/devserve/internal/config"
	"github.com/dtroode/devserve/internal/logger"
	"github.com/dtroode/devserve/internal/server"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	provisioner := cert.NewProvisioner(cfg.Cert.Dir, cert.NewExecRunner(logger), os.Stdout, logger)
	pair, err := app.Provision(ctx, provisioner, os.Stdout)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\n👋 Server stopped")
			return
		}
		stop()
		logger.Fatal("failed to provision certificate", "error", err)
	}
	logger.Debug("certificate provisioned", "cert", pair.CertFile, "key", pair.KeyFile)

	r := router.New(
		handler.NewStatic(cfg.Root),
		middleware.NewCORS(false),
		httpctx.NewManager(),
		logger,
	)
	srv := server.NewHTTPServer(r.Register(), cfg.HTTPS.Addr(), logger)

	a := app.New(srv, server.NewTLSListener(pair), app.TLSBanner(cfg.HTTPS.Host, cfg.HTTPS.Port), os.Stdout, logger)

	app.PrintBuildInfo(os.Stdout, app.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit})

	if err := a.Run(ctx); err != nil {
		fmt.Printf("❌ Server error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
