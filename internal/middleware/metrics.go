package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guesswho_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GuessOutcomes counts submitted guesses by outcome (correct/wrong).
	GuessOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guesswho_guess_outcomes_total",
		Help: "Total number of recorded guesses by outcome",
	}, []string{"status"})

	// SelfAnswers counts recorded self-answers by kind (predefined/custom).
	SelfAnswers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guesswho_self_answers_total",
		Help: "Total number of recorded self-answers by kind",
	}, []string{"kind"})
)

var (
	promOnce sync.Once
	promHTTP *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The collector registers on the default registry, so it is created
// once per process.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promHTTP = fiberprometheus.New(serviceName)
	})
	return promHTTP
}

// MetricsMiddleware returns the Fiber handler that records request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
