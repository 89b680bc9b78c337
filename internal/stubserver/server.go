// Package stubserver is an in-memory implementation of the attendance
// service contract, used by the attend-stub binary for local development and
// by integration tests. State lives in process memory and vanishes on exit.
package stubserver

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Config configures a stub server instance.
type Config struct {
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// AdminEmail grants the admin role to the account that signs up with
	// this address.
	AdminEmail string
}

// Server is the stub attendance service.
type Server struct {
	cfg    Config
	router *gin.Engine

	mu         sync.Mutex
	accounts   map[string]*account          // keyed by email
	tasks      map[string][]*task           // keyed by owner email, insertion order
	attendance map[string]map[string]record // keyed by date, then email
}

type account struct {
	Name         string
	Email        string
	PasswordHash []byte
	Role         string
}

type task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type record struct {
	Name     string
	Email    string
	MarkedAt time.Time
}

// NewServer creates a stub server with empty state.
func NewServer(cfg Config) *Server {
	s := &Server{
		cfg:        cfg,
		accounts:   make(map[string]*account),
		tasks:      make(map[string][]*task),
		attendance: make(map[string]map[string]record),
	}

	router := gin.Default()

	router.POST("/auth/signup", s.handleSignup)
	router.POST("/auth/login", s.handleLogin)

	authed := router.Group("/")
	authed.Use(s.authRequired)
	{
		authed.GET("/tasks", s.handleListTasks)
		authed.POST("/tasks", s.handleCreateTask)
		authed.PUT("/tasks/:id", s.handleUpdateTask)
		authed.DELETE("/tasks/:id", s.handleDeleteTask)
		authed.POST("/attendance", s.handleMarkAttendance)
		authed.GET("/admin/attendance/today", s.handleAdminToday)
	}

	s.router = router
	return s
}

// Router exposes the gin engine, mainly so tests can mount it on httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// today returns the attendance bucket key for the current day.
func today() string {
	return time.Now().Format("2006-01-02")
}
