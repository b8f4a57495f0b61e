// Package server exposes the bot over HTTP: a JSON chat endpoint and a
// liveness probe. It also enforces the one-in-flight-turn-per-session
// contract the rest of the pipeline assumes.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vintrastudio/votebot/internal/bot"
)

// Config holds the server's listen address and mode.
type Config struct {
	Host  string
	Port  int
	Debug bool
}

// Server serves the chat API over a gin engine.
type Server struct {
	bot        *bot.Bot
	engine     *gin.Engine
	httpServer *http.Server

	// sessionLocks serializes turns per session id. Distinct sessions
	// proceed in parallel.
	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// New builds a Server around the bot.
func New(b *bot.Bot, cfg Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	s := &Server{
		bot:          b,
		engine:       engine,
		sessionLocks: make(map[string]*sync.Mutex),
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	engine.POST("/api/chat", s.handleChat)
	engine.GET("/healthz", s.handleHealth)
	return s
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	bot.Result
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// empty text is a valid turn; the pipeline answers it like any other
	// a missing session id starts a fresh conversation
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	lock := s.sessionLock(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	result, err := s.bot.Handle(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		slog.Error("Turn failed", "session", req.SessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{SessionID: req.SessionID, Result: result})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ServeHTTP makes the server usable as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// sessionLock returns the mutex for a session id, creating it on first
// use. Locks are never evicted; the entry cost per session is one mutex.
func (s *Server) sessionLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.sessionLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.sessionLocks[id] = lock
	}
	return lock
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("Starting chat API server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down chat API server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}
