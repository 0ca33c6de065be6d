// Package server provides the HTTP REST API for the character forge.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/character-forge/internal/generation"
	"github.com/jonathan/character-forge/internal/server/ratelimit"
	"github.com/jonathan/character-forge/internal/storage"
)

// requestIDHeader carries the per-request id assigned by the middleware.
const requestIDHeader = "X-Request-ID"

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	repo        storage.Repository
	rateLimiter *ratelimit.Limiter

	// gen is swapped when the stored credential changes; newGen rebuilds
	// the generation service for a new API key.
	genMu  sync.RWMutex
	gen    *generation.Service
	newGen func(ctx context.Context, apiKey string) (*generation.Service, error)
}

// Config holds server configuration
type Config struct {
	Port int
}

// Deps holds the collaborators the server routes requests to.
type Deps struct {
	Repo storage.Repository
	Gen  *generation.Service
	// NewGen rebuilds the generation service when the credential endpoints
	// change the stored API key. Optional; when nil the running service is
	// kept as-is.
	NewGen func(ctx context.Context, apiKey string) (*generation.Service, error)
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Repo == nil {
		return nil, fmt.Errorf("server requires a storage repository")
	}
	if deps.Gen == nil {
		return nil, fmt.Errorf("server requires a generation service")
	}

	s := &Server{
		repo:   deps.Repo,
		gen:    deps.Gen,
		newGen: deps.NewGen,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withRequestID(s.withCORS(s.routes())))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for image generation
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Connection and credential endpoints
	mux.HandleFunc("POST /connection/test", s.handleTestConnection)
	mux.HandleFunc("GET /credential", s.handleGetCredential)
	mux.HandleFunc("PUT /credential", s.handleSetCredential)
	mux.HandleFunc("DELETE /credential", s.handleClearCredential)

	// Generation endpoints, one per task
	mux.HandleFunc("POST /generate/class", s.handleGenerateClass)
	mux.HandleFunc("POST /generate/backstory", s.handleGenerateBackstory)
	mux.HandleFunc("POST /generate/name", s.handleGenerateName)
	mux.HandleFunc("POST /generate/class-name", s.handleGenerateClassName)
	mux.HandleFunc("POST /generate/portrait", s.handleGeneratePortrait)
	mux.HandleFunc("POST /generate/guide", s.handleGenerateGuide)

	// Character CRUD
	mux.HandleFunc("GET /characters", s.handleListCharacters)
	mux.HandleFunc("POST /characters", s.handleSaveCharacter)
	mux.HandleFunc("GET /characters/{id}", s.handleGetCharacter)
	mux.HandleFunc("DELETE /characters/{id}", s.handleDeleteCharacter)
	mux.HandleFunc("DELETE /characters", s.handleClearCharacters)

	// Per-game catalog reads
	mux.HandleFunc("GET /games/{game}/races", s.handleListRaces)
	mux.HandleFunc("GET /games/{game}/classes", s.handleListClasses)
	mux.HandleFunc("GET /games/{game}/options", s.handleListOptions)

	return mux
}

// Start begins listening for requests and blocks until ctx is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("[SERVER] shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Stop rate limiter cleanup goroutine
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
		return nil
	})

	err := g.Wait()
	log.Println("[SERVER] stopped")
	return err
}

// generator returns the current generation service.
func (s *Server) generator() *generation.Service {
	s.genMu.RLock()
	defer s.genMu.RUnlock()
	return s.gen
}

// swapGenerator replaces the generation service after a credential change.
func (s *Server) swapGenerator(gen *generation.Service) {
	s.genMu.Lock()
	s.gen = gen
	s.genMu.Unlock()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRequestID assigns each request an id and echoes it on the response.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
