package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mauv0809/race-organiser/internal/config"
	"github.com/mauv0809/race-organiser/internal/http/handlers"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/processor"
	"github.com/mauv0809/race-organiser/internal/pubsub"
	"github.com/mauv0809/race-organiser/internal/seeding"
)

func NewServer(store handlers.Store, scheduler handlers.RoundGenerator, processor *processor.Processor, seeder *seeding.Seeder, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Scheduler:      scheduler,
		Processor:      processor,
		Seeder:         seeder,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	s.Router.Handle("/metrics", s.MetricsHandler)

	s.Router.Group(func(r chi.Router) {
		r.Use(paramsMiddleware)

		r.Get("/health", handlers.HealthCheckHandler())
		r.Get("/stats", handlers.StatsHandler(s.MetricsStore))

		r.Post("/controls", handlers.CreateControlHandler(s.Store, s.Cfg.League))
		r.Get("/controls/latest", handlers.LatestControlHandler(s.Store, s.Cfg.League))
		r.Get("/controls/{controlID}", handlers.GetControlHandler(s.Store))

		r.Post("/rounds/generate", handlers.GenerateRoundHandler(s.Store, s.Scheduler, s.Notifier, s.MetricsStore, s.Cfg.League))
		r.Get("/races", handlers.ListRacesHandler(s.Store, s.Cfg.League))
		r.Post("/races/result", handlers.RecordResultHandler(s.Processor))

		r.Get("/teams", handlers.ListTeamsHandler(s.Store))
		r.Post("/teams/seed", handlers.SeedTeamsHandler(s.Seeder, s.Cfg.League))

		r.Post("/pubsub/result-recorded", handlers.ResultRecordedHandler(s.Processor, s.pubsub))

		// Slash commands are signed by Slack; the signature covers the raw body.
		r.Method(http.MethodPost, "/slack/command/running-order",
			Chain(handlers.RunningOrderCommandHandler(s.Store, s.Notifier, s.Cfg.League), slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)))
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
