package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signUpAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subletez_signup_attempts_total",
		Help: "Number of sign-up attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subletez_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	listingsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subletez_listings_published_total",
		Help: "Number of listing publish attempts grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subletez_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncSignUp increments the sign-up counter.
func IncSignUp(status string) {
	signUpAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncListingPublished increments the publish counter.
func IncListingPublished(status string) {
	listingsPublished.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
