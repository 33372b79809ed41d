// Package mockserver реализует фиктивный API Rewardful в памяти для тестов и локальной разработки.
package mockserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server обслуживает эндпоинты API поверх хранилища Store.
type Server struct {
	store   *Store
	secret  string
	logger  *zap.Logger
	now     func() time.Time
	extra   []func(http.Handler) http.Handler
	metrics http.Handler
}

// Option настраивает сервер.
type Option func(*Server)

// WithLogger задаёт логгер запросов.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithMiddleware добавляет middleware ко всем маршрутам.
func WithMiddleware(mw func(http.Handler) http.Handler) Option {
	return func(s *Server) {
		s.extra = append(s.extra, mw)
	}
}

// WithMetricsHandler публикует обработчик метрик на /metrics без авторизации.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// New создаёт сервер, принимающий запросы с указанным секретом API.
func New(store *Store, secret string, opts ...Option) *Server {
	s := &Server{
		store:  store,
		secret: secret,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store возвращает хранилище сервера.
func (s *Server) Store() *Store {
	return s.store
}

// Router настраивает маршруты фиктивного API с префиксом /v1.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(Logger(s.logger))
	r.Use(chimiddleware.Compress(5, "application/json"))
	for _, mw := range s.extra {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(BasicAuth(s.secret))

		r.Route("/affiliates", func(r chi.Router) {
			r.Get("/", s.listAffiliates)
			r.Post("/", s.createAffiliate)
			r.Get("/{id}", s.get(Affiliates, "Affiliate"))
			r.Put("/{id}", s.updateAffiliate)
			r.Get("/{id}/sso", s.affiliateSSO)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", s.listCampaigns)
			r.Post("/", s.createCampaign)
			r.Get("/{id}", s.get(Campaigns, "Campaign"))
			r.Put("/{id}", s.updateCampaign)
		})

		r.Route("/commissions", func(r chi.Router) {
			r.Get("/", s.listCommissions)
			r.Get("/{id}", s.get(Commissions, "Commission"))
			r.Put("/{id}", s.updateCommission)
			r.Delete("/{id}", s.deleteCommission)
		})

		r.Route("/payouts", func(r chi.Router) {
			r.Get("/", s.listPayouts)
			r.Get("/{id}", s.get(Payouts, "Payout"))
			r.Put("/{id}/pay", s.payPayout)
		})

		r.Get("/referrals", s.listReferrals)

		r.Route("/affiliate_coupons", func(r chi.Router) {
			r.Get("/", s.listByAffiliate(AffiliateCoupons))
			r.Post("/", s.createCoupon)
			r.Get("/{id}", s.get(AffiliateCoupons, "Coupon"))
		})

		r.Route("/affiliate_links", func(r chi.Router) {
			r.Get("/", s.listByAffiliate(AffiliateLinks))
			r.Post("/", s.createLink)
			r.Get("/{id}", s.get(AffiliateLinks, "Link"))
			r.Put("/{id}", s.updateLink)
		})
	})

	return r
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
