package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "corkboard", Name: "posts_created_total", Help: "Number of posts created."},
	)
	Signups = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "corkboard", Name: "signups_total", Help: "Number of accounts created."},
	)
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "corkboard", Name: "logins_total", Help: "Number of successful logins."},
	)
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "corkboard", Name: "login_failures_total", Help: "Number of rejected login attempts."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PostsCreated, Signups, Logins, LoginFailures)
}
