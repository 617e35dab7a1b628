package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	accessCookie  = "accessToken"
	refreshCookie = "refreshToken"
)

func (s *Service) setAccessCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookie, token, int(AccessTokenTTL.Seconds()), "/", "", s.secureCookies, true)
}

func (s *Service) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, token, int(RefreshTokenTTL.Seconds()), "/", "", s.secureCookies, true)
}

func (s *Service) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookie, "", -1, "/", "", s.secureCookies, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", s.secureCookies, true)
}
