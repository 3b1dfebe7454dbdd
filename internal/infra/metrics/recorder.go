// Package metrics exposes domain counters through a private Prometheus registry.
package metrics

import (
	"schoolhub/internal/domain/entity"
	"schoolhub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const namespace = "schoolhub"

// Recorder implements service.MetricsRecorder with Prometheus counters.
type Recorder struct {
	loginAttempts       *prometheus.CounterVec
	accountsProvisioned *prometheus.CounterVec
	classesCreated      prometheus.Counter
	notifications       *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go runtime and process collectors.
// A private registry keeps test binaries and the server from sharing state.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}

// NewRecorder creates the domain counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Login attempts by account role and outcome",
			},
			[]string{"role", "outcome"},
		),
		accountsProvisioned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_provisioned_total",
				Help:      "Accounts created by role",
			},
			[]string{"role"},
		),
		classesCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classes_created_total",
				Help:      "Classes created",
			},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Credential notifications by delivery outcome",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(r.loginAttempts, r.accountsProvisioned, r.classesCreated, r.notifications)

	return r
}

func (r *Recorder) LoginAttempt(role entity.Role, outcome string) {
	r.loginAttempts.WithLabelValues(string(role), outcome).Inc()
}

func (r *Recorder) AccountProvisioned(role entity.Role) {
	r.accountsProvisioned.WithLabelValues(string(role)).Inc()
}

func (r *Recorder) ClassCreated() {
	r.classesCreated.Inc()
}

// Notification counts one of service.OutcomePublished, OutcomeFailed or OutcomeDropped.
func (r *Recorder) Notification(outcome string) {
	r.notifications.WithLabelValues(outcome).Inc()
}

// Module provides the registry under its Registerer and Gatherer faces plus the recorder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		fx.Annotate(NewRecorder, fx.As(new(service.MetricsRecorder))),
	),
)
