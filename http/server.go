package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// MaxRequestBodySize caps the size of a scrape request body.
const MaxRequestBodySize = 1 << 20

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server exposes a webscrape.Scraper over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router
	logger *slog.Logger

	// Addr is the bind address, e.g. "0.0.0.0:8001". Set before calling Open.
	Addr string

	Scraper webscrape.Scraper
}

// NewServer returns a new Server that scrapes with scraper and logs to logger.
func NewServer(scraper webscrape.Scraper, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		router:  chi.NewRouter(),
		logger:  logger,
		Scraper: scraper,
	}
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/", s.handleIndex)
	r.Post("/scrape", s.handleScrape)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open binds the listener on Addr. Serve must be called to accept requests.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// Serve accepts connections until Close is called.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server not open")
	}
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Website Scraper Service",
		"status":  "running",
	})
}

// handleScrape always answers 200; failures are reported in the body.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req webscrape.ScrapeRequest
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		// An unreadable body carries no usable URL; validation rejects it.
		s.logger.Warn("decoding scrape request", "request_id", requestIDFrom(r.Context()), "err", err)
		req = webscrape.ScrapeRequest{}
	}

	result := s.Scraper.Scrape(r.Context(), &req)
	writeJSON(w, http.StatusOK, result.Response())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

type requestIDKey struct{}

// requestID tags each request with a UUID, reusing an inbound X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger.Info("http request",
				"request_id", requestIDFrom(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

// corsMiddleware permits every origin, method and header. Credentialed
// requests get their Origin echoed back, since "*" is not honored with
// credentials. Preflight requests are answered directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Add("Vary", "Origin")
		if origin := r.Header.Get("Origin"); origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
		} else {
			h.Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT")
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", strings.TrimSpace(reqHeaders))
			} else {
				h.Set("Access-Control-Allow-Headers", "*")
			}
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
