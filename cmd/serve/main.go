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

	r := router.New(
		handler.NewStatic(cfg.Root),
		middleware.NewCORS(true),
		httpctx.NewManager(),
		logger,
	)
	srv := server.NewHTTPServer(r.Register(), cfg.HTTP.Addr(), logger)

	a := app.New(srv, server.NewPlainListener(), app.PlainBanner(cfg.HTTP.Host, cfg.HTTP.Port), os.Stdout, logger)

	app.PrintBuildInfo(os.Stdout, app.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit})

	if err := a.Run(ctx); err != nil {
		fmt.Printf("❌ Server error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
