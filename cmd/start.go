package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"pokepc-dataset/core/loader"
	"pokepc-dataset/core/logger"
	"pokepc-dataset/core/metrics"
	"pokepc-dataset/core/middleware/auth"
	"pokepc-dataset/core/middleware/rayid"
	"pokepc-dataset/feature/catalog"
	"pokepc-dataset/feature/integrity"
	"pokepc-dataset/feature/pokemon"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pokepc-dataset/docs/swagger"
)

// @title PokéPC Dataset API
// @version 1.0
// @description Read API over the PokéPC dataset, with search and integrity checks.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dataset server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		logg.Info("Dataset opened",
			zap.String("source", rt.cfg.Dataset.Source),
			zap.String("location", rt.source.Location("")),
			zap.Duration("cache_ttl", rt.cache.TTL()),
		)

		m := metrics.New()
		m.RegisterCache(rt.cache)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(rt.catalog, logg, rt.cfg.Server.ReadOnly))
		mgr.Register(pokemon.NewFeature(rt.catalog, m, logg))
		mgr.Register(integrity.NewFeature(rt.catalog, logg, rt.cfg.Server.ReadOnly))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(m.Middleware())

		// Public endpoints
		app.Get("/metrics", m.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()), zap.Bool("read_only", rt.cfg.Server.ReadOnly))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
