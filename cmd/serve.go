package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio as HTML",
	Long:  `Starts the web host on PORTFOLIO_PORT (or PORT), serving the page, section fragments and static images.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Mode = "debug"
		}

		srv, err := server.New(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Printf("Serving portfolio (theme=%s, device=%s)", cfg.Theme, cfg.Device)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
