package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the portfolio in the terminal",
	Long: `Takes over the terminal with the animated portfolio. Scroll with j/k, the
arrows or the mouse wheel, jump with 1-7, toggle the theme with d and quit
with q.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Anything written to stderr would tear the screen.
		out := io.Discard
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			out = f
		}
		log.SetOutput(out)
		defer log.SetOutput(os.Stderr)
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return tui.Run(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(termCmd)
}
