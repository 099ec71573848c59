package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"nexgen-pricing/internal/catalog"
	"nexgen-pricing/internal/domain/ports/adapter"
	"nexgen-pricing/internal/domain/ports/repository"
	"nexgen-pricing/internal/usecase"
)

// visitorCookie identifies the browser across reloads; it is the server-side
// analogue of the original site's per-browser localStorage scope.
const visitorCookie = "nxg_visitor"

type Server struct {
	sessions      *usecase.SessionManager
	region        usecase.RegionGateUseCase
	prefs         repository.PreferenceRepository
	catalog       *catalog.Catalog
	gateway       adapter.PaymentGateway // nil disables the hosted stripe page
	webhookSecret string
	log           *zerolog.Logger
}

func NewServer(
	sessions *usecase.SessionManager,
	region usecase.RegionGateUseCase,
	prefs repository.PreferenceRepository,
	cat *catalog.Catalog,
	gateway adapter.PaymentGateway,
	webhookSecret string,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		sessions:      sessions,
		region:        region,
		prefs:         prefs,
		catalog:       cat,
		gateway:       gateway,
		webhookSecret: webhookSecret,
		log:           logger,
	}
}

func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalogList)
		r.Get("/catalog/{key}", s.handleCatalogGet)

		r.Get("/region", s.handleRegionResolve)
		r.Post("/region", s.handleRegionChoose)

		r.Post("/sessions", s.handleSessionCreate)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Post("/automation", s.handleSelectAutomation)
			r.Post("/setup", s.handleSelectSetup)
			r.Post("/management", s.handleSelectManagement)
			r.Get("/billing", s.handleBilling)
			r.Post("/checkout", s.handleCheckout)
		})
	})

	r.Post("/webhook/razorpay", s.handleRazorpayWebhook)

	r.Get("/payment/stripe", s.handleStripePayment)
	r.Get("/payment/razorpay", s.handleRazorpayPayment)
	r.Get("/payment/success", s.handlePaymentSuccess)
	r.Get("/payment/failed", s.handlePaymentFailed)

	return r
}

// visitorID returns the visitor cookie value, assigning one on first contact.
func (s *Server) visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(visitorCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
