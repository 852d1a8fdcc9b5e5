package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-catalog-admin/internal/adapter"
	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries only command results
	log := logger.NewWriterLogger(os.Stderr, "catalogctl")

	fs := flag.NewFlagSet("catalogctl", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: catalogctl [flags] <command> [args]\n\n%s\nFlags:\n", usage)
		fs.PrintDefaults()
	}

	cfg, args, err := config.GetClientConfig(fs, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Address, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog adapter")
	}
	catalog.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := newCommandLine(catalog, os.Stdout)
	if err = cli.run(ctx, args); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "catalogctl: %v\n", err)
		os.Exit(1)
	}
}
