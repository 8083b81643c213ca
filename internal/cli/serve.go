package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayreach/wayreach/internal/api"
	"github.com/wayreach/wayreach/pkg/cache"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr          string
		backend       string
		ttl           time.Duration
		redisAddr     string
		redisPassword string
		redisDB       int
		mongoURI      string
		mongoDatabase string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Networks are uploaded once via POST /v1/networks and addressed by content
hash afterwards. Reach queries run per request and are never stored; only
the uploaded networks live in the cache backend.

Backends:
  file    local file cache under ~/.cache/wayreach (default)
  redis   shared Redis instance, see --redis-addr
  mongo   MongoDB collection with TTL expiry, see --mongo-uri
  none    in-memory only, networks vanish on restart`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, backend, ttl, redisAddr, redisPassword, redisDB, mongoURI, mongoDatabase)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&backend, "cache", "file", "network store backend: file, redis, mongo, none")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "network expiry (0 = keep forever)")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address for --cache redis")
	cmd.Flags().StringVar(&redisPassword, "redis-password", "", "redis password for --cache redis")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "redis database for --cache redis")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongo URI for --cache mongo")
	cmd.Flags().StringVar(&mongoDatabase, "mongo-db", appName, "mongo database for --cache mongo")

	return cmd
}

// runServe builds the cache backend and serves until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, backend string, ttl time.Duration, redisAddr, redisPassword string, redisDB int, mongoURI, mongoDatabase string) error {
	store, err := c.newStore(ctx, backend, redisAddr, redisPassword, redisDB, mongoURI, mongoDatabase)
	if err != nil {
		return err
	}
	defer store.Close()

	server := api.NewServer(store, c.Logger, ttl)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	c.Logger.Info("serving", "addr", addr, "cache", backend)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// newStore builds the cache backend named by --cache.
func (c *CLI) newStore(ctx context.Context, backend, redisAddr, redisPassword string, redisDB int, mongoURI, mongoDatabase string) (cache.Cache, error) {
	switch backend {
	case "file":
		return newFileCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, redisAddr, redisPassword, redisDB)
	case "mongo":
		return cache.NewMongoCache(ctx, mongoURI, mongoDatabase, "networks")
	case "none":
		return cache.NewNullCache(), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q (want file, redis, mongo, or none)", backend)
}
