package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tripveda/tripveda/config"
	"github.com/tripveda/tripveda/internal/adminapi"
	"github.com/tripveda/tripveda/internal/app"
	"github.com/tripveda/tripveda/internal/leads"
	"github.com/tripveda/tripveda/internal/media"
	"github.com/tripveda/tripveda/internal/publicapi"
	"github.com/tripveda/tripveda/internal/webserver"
)

var (
	cfile  = flag.String("c", "tripveda.yml", "configuration file")
	initdb = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*cfile)
	cfg.InitDirs()

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		fmt.Println("database initialized")
		os.Exit(0)
	}

	server := webserver.Init(application, application.Settings(), zap.L())

	leadService := leads.NewService(
		leads.NewGormRepository(application.DB()),
		application.Bus(), zap.L())

	mediaService := media.NewService(
		media.NewHTTPUploader(cfg.Media), application.DB(), zap.L())

	adminapi.InitMedia(mediaService)
	adminapi.Init(application)
	publicapi.Init(application, leadService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Listen)
	g.Go(func() error {
		<-ctx.Done()
		zap.L().Info("shutdown signal received")
		return server.Echo().Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("service stopped", zap.Error(err))
	}
}
