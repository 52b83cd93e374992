package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsoto007/nush/internal/auth"
	"github.com/jsoto007/nush/internal/middleware"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionPayload returns the user plus a bearer token, and also sets the
// session cookie so cookie-jar clients keep working without the header.
func (s *Server) sessionPayload(c *gin.Context, user auth.User) gin.H {
	token, _ := GenerateToken(user.ID, user.Email, user.Role)
	c.SetCookie(middleware.SessionCookie, token, 86400, "/", "", false, true)
	return gin.H{"user": user, "token": token}
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing required fields", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.accounts[req.Email]; exists {
		respondErr(c, http.StatusConflict, "CONFLICT", "email already exists", nil)
		return
	}

	id := uuid.New().String()
	s.state.addAccount(id, req.Name, req.Email, req.Password, auth.RoleCustomer)
	respondOK(c, http.StatusCreated, s.sessionPayload(c, s.state.byID[id].user))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	acct, ok := s.state.accounts[req.Email]
	if !ok {
		respondErr(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password", nil)
		return
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)) != nil {
		respondErr(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password", nil)
		return
	}

	respondOK(c, http.StatusOK, s.sessionPayload(c, acct.user))
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	respondOK(c, http.StatusOK, gin.H{})
}

func (s *Server) handleMe(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respondErr(c, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	acct, ok := s.state.byID[userID]
	if !ok {
		respondErr(c, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in", nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": acct.user})
}

func (s *Server) handleForgotPassword(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	// Always answer OK so the endpoint cannot be used to probe for
	// registered emails.
	if acct, ok := s.state.accounts[req.Email]; ok {
		acct.resetToken = uuid.New().String()
	}
	respondOK(c, http.StatusOK, gin.H{})
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.Password == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, acct := range s.state.accounts {
		if acct.resetToken != "" && acct.resetToken == req.Token {
			hash, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			acct.passwordHash = hash
			acct.resetToken = ""
			respondOK(c, http.StatusOK, gin.H{})
			return
		}
	}
	respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid or expired token", nil)
}
