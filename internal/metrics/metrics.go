// Package metrics exposes the server's Prometheus instrumentation: active
// connection gauges and lifetime counters for teams, players, and resolved
// challenges.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "maze_runner",
		Name:      "connections_active",
		Help:      "Number of TCP connections currently accepted by the arbiter.",
	})

	TeamsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maze_runner",
		Name:      "teams_registered_total",
		Help:      "Total number of teams successfully registered.",
	})

	PlayersSubscribedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maze_runner",
		Name:      "players_subscribed_total",
		Help:      "Total number of players successfully subscribed to a team.",
	})

	ChallengesResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maze_runner",
		Name:      "challenges_resolved_total",
		Help:      "Total number of challenges resolved, partitioned by outcome.",
	}, []string{"outcome"})
)

// Serve starts the blocking Prometheus HTTP exporter on addr. Callers run it
// in its own goroutine; a non-empty addr is required by the caller.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logrus.WithField("addr", addr).Info("metrics: serving /metrics")
	return http.ListenAndServe(addr, mux)
}
