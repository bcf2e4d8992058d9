package commands

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/handlers"
	"github.com/ledgerline/ledgerline/internal/importer"
	"github.com/ledgerline/ledgerline/internal/middleware"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()

			application, err := newApp(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer application.Close()

			if application.cfg.IsProduction {
				gin.SetMode(gin.ReleaseMode)
			}

			r := gin.New()
			r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
			r.Use(cors.Default())

			if err := r.SetTrustedProxies(nil); err != nil {
				return err
			}

			handlers.RegisterHandlers(r, application.services, importer.DefaultRegistry())

			logger.Info("Server starting", slog.String("port", application.cfg.Port))
			return r.Run(":" + application.cfg.Port)
		},
	}
}
