package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/race-organiser/internal/config"
	"github.com/mauv0809/race-organiser/internal/http/handlers"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/processor"
	"github.com/mauv0809/race-organiser/internal/pubsub"
	"github.com/mauv0809/race-organiser/internal/seeding"
)

type Server struct {
	Store          handlers.Store
	Scheduler      handlers.RoundGenerator
	Processor      *processor.Processor
	Seeder         *seeding.Seeder
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
	pubsub         pubsub.PubSubClient
}
