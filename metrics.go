package aoc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aoc_solves_total",
		Help: "Puzzle parts solved, by outcome.",
	}, []string{"day", "part", "outcome"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aoc_solve_duration_seconds",
		Help:    "Time spent computing one puzzle part, parsing excluded.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"day", "part"})
)
