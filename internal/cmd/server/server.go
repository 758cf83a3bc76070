// Package server wires configuration, storage, and the HTTP surface for the
// list server command.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/listkeeper/internal/list/service"
	bboltstore "github.com/louisbranch/listkeeper/internal/list/storage/bbolt"
	entrypoint "github.com/louisbranch/listkeeper/internal/platform/cmd"
	"github.com/louisbranch/listkeeper/internal/web"
)

// Config holds the server command configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"LISTKEEPER_PORT" envDefault:"8000"`
	// DBPath is the filesystem path of the BoltDB database file.
	DBPath string `env:"LISTKEEPER_DB_PATH" envDefault:"listkeeper.db"`
}

// ParseConfig loads environment defaults and parses flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "BoltDB database file path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens storage and serves HTTP traffic until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := bboltstore.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		srv, err := web.NewServer(ctx, web.Config{
			HTTPAddr: fmt.Sprintf(":%d", cfg.Port),
			Service:  service.New(store, store),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
