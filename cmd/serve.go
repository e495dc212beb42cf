package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

var port int // Listen port; 0 keeps the configured port

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetSchedulerConfig()
		if port != 0 {
			cfg.Port = port
		}

		app := api.NewApp(cfg)
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s (parallel=%v)", addr, cfg.Parallel)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config)")
}
