package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gotolinks_redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// BlockOps counts block editor operations by kind and outcome.
var BlockOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gotolinks_block_ops_total",
	Help: "Total number of block editor operations",
}, []string{"op", "outcome"})

// AutosaveFlushes counts autosave flushes by outcome.
var AutosaveFlushes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gotolinks_autosave_flushes_total",
	Help: "Total number of autosave flushes",
}, []string{"outcome"})

// ProfileViews counts public profile page loads by handle.
var ProfileViews = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gotolinks_profile_views_total",
	Help: "Total number of public profile views",
}, []string{"handle"})

// PreviewConnections tracks open live preview WebSocket connections.
var PreviewConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "gotolinks_preview_connections",
	Help: "Current number of live preview WebSocket connections",
})

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
