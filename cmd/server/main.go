// Command server runs the maze arbiter: it accepts player connections,
// registers teams, and resolves moves and challenges against the fixed
// maze.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maze-runner-go/internal/applog"
	"maze-runner-go/internal/config"
	"maze-runner-go/internal/gameserver"
	"maze-runner-go/internal/maze"
	"maze-runner-go/internal/metrics"
)

func main() {
	var (
		configPath  string
		listenAddr  string
		metricsAddr string
		logLevel    string
		mazeFile    string
	)

	root := &cobra.Command{
		Use:   "maze-server",
		Short: "Runs the maze game arbiter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer(configPath)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			if metricsAddr != "" {
				cfg.MetricsAddr = metricsAddr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if mazeFile != "" {
				cfg.MazeFile = mazeFile
			}

			log := applog.New(cfg.LogLevel)

			grid := maze.DefaultMaze
			if cfg.MazeFile != "" {
				loaded, err := maze.LoadFromFile(cfg.MazeFile)
				if err != nil {
					return err
				}
				grid = loaded
			}
			srv := gameserver.New(grid, log)

			if cfg.MetricsAddr != "" {
				go func() {
					if err := metrics.Serve(cfg.MetricsAddr); err != nil {
						log.WithError(err).Error("metrics server stopped")
					}
				}()
			}

			ln, err := srv.Listen(cfg.ListenAddr)
			if err != nil {
				return err
			}
			return srv.Serve(ln)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a server YAML config file")
	root.Flags().StringVar(&listenAddr, "listen", "", "override the listen address (default 127.0.0.1:8778)")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on; empty disables it")
	root.Flags().StringVar(&logLevel, "log-level", "", "override the log level (debug, info, warn, error)")
	root.Flags().StringVar(&mazeFile, "maze-file", "", "path to a custom Size×Size glyph maze layout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
