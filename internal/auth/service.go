package auth

import (
	"github.com/ReactMentorship/travelblog-core/internal/users"
)

// Service owns token issuance/verification and the auth endpoints. Cookie
// Secure flags follow secureCookies (on in production, off for local http).
type Service struct {
	users         *users.Repository
	accessSecret  []byte
	refreshSecret []byte
	secureCookies bool
}

func NewService(usersRepo *users.Repository, accessSecret, refreshSecret []byte, secureCookies bool) *Service {
	return &Service{
		users:         usersRepo,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		secureCookies: secureCookies,
	}
}
