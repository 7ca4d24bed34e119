package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/londailey6937/QuillPilot-Native-sub006/internal/server"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cache"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/gallery"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Long: `Run the HTTP preview server.

The server exposes the analysis pipeline over HTTP for editor integrations
and the desktop shell. With --redis the pipeline cache is shared across
instances; with --mongo saved clouds go to a shared gallery instead of
process memory. Both fall back to preferences when flags are unset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := c.loadPrefs()
			if addr == "" {
				addr = p.Server.Addr
			}
			if redisAddr == "" {
				redisAddr = p.Server.RedisAddr
			}
			if mongoURI == "" {
				mongoURI = p.Server.MongoURI
			}
			return c.runServe(cmd.Context(), addr, redisAddr, mongoURI, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from preferences)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb uri for a shared gallery")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache, gallery, and pipeline into the HTTP server.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string, noCache bool) error {
	store, err := c.newServeCache(ctx, redisAddr, noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	gal, err := c.newGallery(ctx, mongoURI)
	if err != nil {
		return err
	}
	defer c.closeGallery(gal)

	srv, err := server.New(server.Config{
		Addr:    addr,
		Runner:  runner,
		Gallery: gal,
		Logger:  c.Logger,
	})
	if err != nil {
		return err
	}

	printInfo("Serving on http://%s", addr)
	return srv.ListenAndServe(ctx)
}

// closeGallery disconnects the gallery backend on shutdown. A failed
// disconnect (a mongo store losing its server, say) is worth a warning
// but should not mask the server's own exit status.
func (c *CLI) closeGallery(gal gallery.Store) {
	if err := gal.Close(context.Background()); err != nil {
		c.Logger.Warn("gallery close failed", "err", err)
	}
}

// newServeCache picks the cache backend for the server: redis when
// configured, the local file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return nil, fmt.Errorf("connect to redis %s: %w", redisAddr, err)
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return store, nil
	}
	return newCache(false)
}

// newGallery picks the gallery backend: mongo when configured, process
// memory otherwise.
func (c *CLI) newGallery(ctx context.Context, mongoURI string) (gallery.Store, error) {
	if mongoURI == "" {
		return gallery.NewMemoryStore(), nil
	}
	store, err := gallery.NewMongoStore(ctx, gallery.MongoConfig{URI: mongoURI})
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	c.Logger.Info("using mongo gallery")
	return store, nil
}
