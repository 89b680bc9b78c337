package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type updateTaskRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}

	role := "user"
	if email == strings.ToLower(s.cfg.AdminEmail) {
		role = "admin"
	}

	a := &account{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	s.accounts[email] = a

	token, err := s.issueToken(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[email]
	if !ok || bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := s.issueToken(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": a.Role})
}

func (s *Server) handleListTasks(c *gin.Context) {
	email := c.GetString("email")

	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.tasks[email]
	out := make([]task, 0, len(owned))
	for _, t := range owned {
		out = append(out, *t)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	email := c.GetString("email")
	t := &task{
		ID:     uuid.New().String(),
		Title:  req.Title,
		Status: "pending",
	}

	s.mu.Lock()
	s.tasks[email] = append(s.tasks[email], t)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status != nil && *req.Status != "pending" && *req.Status != "completed" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be pending or completed"})
		return
	}

	email := c.GetString("email")
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(email, id)
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	email := c.GetString("email")
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	owned := s.tasks[email]
	for i, t := range owned {
		if t.ID == id {
			s.tasks[email] = append(owned[:i], owned[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
}

func (s *Server) handleMarkAttendance(c *gin.Context) {
	email := c.GetString("email")
	name := c.GetString("name")
	day := today()

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.attendance[day]
	if bucket == nil {
		bucket = make(map[string]record)
		s.attendance[day] = bucket
	}

	if _, marked := bucket[email]; marked {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Attendance already marked for today"})
		return
	}

	bucket[email] = record{Name: name, Email: email, MarkedAt: time.Now()}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance marked"})
}

func (s *Server) handleAdminToday(c *gin.Context) {
	if c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0)
	for _, rec := range s.attendance[today()] {
		out = append(out, gin.H{"user": gin.H{"name": rec.Name, "email": rec.Email}})
	}
	c.JSON(http.StatusOK, out)
}

// findTask returns the task with the given id owned by email. Caller must
// hold s.mu.
func (s *Server) findTask(email, id string) *task {
	for _, t := range s.tasks[email] {
		if t.ID == id {
			return t
		}
	}
	return nil
}
