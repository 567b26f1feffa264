package httpapi

import (
	"context"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"petra/internal/predict"
)

// Predictor forwards a request to the inference service.
type Predictor interface {
	Predict(ctx context.Context, req predict.Request) predict.Result
	Endpoint() string
}

// Sessions tracks the per-session intro flag.
type Sessions interface {
	ID(w http.ResponseWriter, r *http.Request) (string, error)
	IntroShown(id string) bool
	MarkIntroShown(id string)
}

// Deps are the collaborators of the HTTP layer.
type Deps struct {
	Predictor   Predictor
	Sessions    Sessions
	AssetsDir   string
	MapboxToken string
}

type server struct {
	Deps
	pages *template.Template
}

// NewMux builds the dashboard router.
func NewMux(d Deps) http.Handler {
	s := &server{Deps: d, pages: pages}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", s.handleSplash)
	r.Post("/intro", s.handleIntro)
	r.Get("/dashboard", s.handleDashboard)
	r.Post("/dashboard/predict/file", s.handleDashboardPredictFile)
	r.Post("/dashboard/predict/url", s.handleDashboardPredictURL)

	r.Route("/api", func(r chi.Router) {
		if corsEnabled {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: corsAllowedOrigins,
				AllowedMethods: corsAllowedMethods,
				AllowedHeaders: corsAllowedHeaders,
				MaxAge:         300,
			}))
		}
		r.Get("/points", s.handlePoints)
		r.Get("/points.geojson", s.handlePointsGeoJSON)
		r.Get("/evaluation", s.handleEvaluation)
		r.Post("/predict", s.handlePredict)
		r.Post("/preview", s.handlePreview)
	})

	if s.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.AssetsDir))))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}
