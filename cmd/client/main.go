// Command client runs one navigator: it connects to a maze arbiter,
// registers a team, subscribes its players, and explores until the
// connection drops.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"maze-runner-go/internal/applog"
	"maze-runner-go/internal/client"
	"maze-runner-go/internal/config"
)

func main() {
	var (
		configPath string
		serverAddr string
		teamName   string
		logLevel   string
		maxSteps   int
	)

	root := &cobra.Command{
		Use:   "maze-client",
		Short: "Runs one maze navigator against a server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(configPath)
			if err != nil {
				return err
			}
			if serverAddr != "" {
				cfg.ServerAddr = serverAddr
			}
			if teamName != "" {
				cfg.TeamName = teamName
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log := applog.New(cfg.LogLevel)
			return run(cfg.ServerAddr, cfg.TeamName, cfg.Players, maxSteps, log)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a client YAML config file")
	root.Flags().StringVar(&serverAddr, "server", "", "override the arbiter address (default 127.0.0.1:8778)")
	root.Flags().StringVar(&teamName, "team", "", "override the team name to register")
	root.Flags().StringVar(&logLevel, "log-level", "", "override the log level (debug, info, warn, error)")
	root.Flags().IntVar(&maxSteps, "max-steps", 1000, "stop exploring after this many moves")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(serverAddr, teamName string, players []string, maxSteps int, log *logrus.Logger) error {
	if len(players) == 0 {
		players = []string{"scout"}
	}

	d, err := client.Dial(serverAddr, log.WithField("team", teamName))
	if err != nil {
		return err
	}
	defer d.Close()

	token, err := d.RegisterTeam(teamName)
	if err != nil {
		return err
	}
	log.WithField("token", token).Info("client: team registered")

	if err := d.SubscribePlayer(players[0], token); err != nil {
		return err
	}
	log.WithField("player", players[0]).Info("client: player subscribed")

	for i := 0; i < maxSteps; i++ {
		ok, err := d.Step()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}
