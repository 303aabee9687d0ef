package service

import (
	"github.com/mhagelund/folio/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies login attempts against the single administrator
// credential injected at startup.
type AuthService interface {
	// Login reports whether the given username/password pair matches the
	// administrator credential. It does not reveal which part was wrong.
	Login(username, password string) bool
}

type authServiceImpl struct {
	cred model.AdminCredential
}

// NewAuthService creates an AuthService for the given credential.
func NewAuthService(cred model.AdminCredential) AuthService {
	return &authServiceImpl{cred: cred}
}

// Login compares the password against the stored bcrypt hash before checking
// the username, so both paths do comparable work.
func (s *authServiceImpl) Login(username, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(s.cred.PasswordHash), []byte(password))
	return err == nil && username == s.cred.Username
}
