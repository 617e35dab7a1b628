package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ReactMentorship/travelblog-core/internal/users"
)

type registerDTO struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler creates the user and logs them in, setting both token
// cookies in the same response.
func (s *Service) RegisterHandler(c *gin.Context) {
	var body registerDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	hashed, err := HashPassword(body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	err = s.users.Create(users.User{Name: body.Name, Username: body.Username, Password: hashed})
	if errors.Is(err, users.ErrDuplicateUsername) {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if !s.issueSession(c, body.Username) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered and logged in"})
}

func (s *Service) LoginHandler(c *gin.Context) {
	var body loginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	u, err := s.users.FindByUsername(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if u == nil || !VerifyPassword(body.Password, u.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !s.issueSession(c, u.Username) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// RefreshHandler mints a new access token off a valid refresh cookie. The
// refresh token itself is never re-issued here.
func (s *Service) RefreshHandler(c *gin.Context) {
	refresh, err := c.Cookie(refreshCookie)
	if err != nil || refresh == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	username, err := s.VerifyToken(refresh, RefreshToken)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	access, err := s.IssueAccessToken(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	s.setAccessCookie(c, access)
	c.JSON(http.StatusOK, gin.H{"message": "Access token refreshed"})
}

func (s *Service) LogoutHandler(c *gin.Context) {
	s.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// MeHandler runs behind RequireAuth; the username is already on the context.
func (s *Service) MeHandler(c *gin.Context) {
	u, err := s.users.FindByUsername(Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"name": u.Name, "username": u.Username}})
}

func (s *Service) issueSession(c *gin.Context, username string) bool {
	access, err := s.IssueAccessToken(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return false
	}
	refresh, err := s.IssueRefreshToken(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return false
	}
	s.setAccessCookie(c, access)
	s.setRefreshCookie(c, refresh)
	return true
}
