package model

import "time"

// Session は DB に保存されるサーバーサイドセッション。クッキーには不透明な
// トークンのみを持たせる。LoggedIn が唯一の認可フラグとなる。
type Session struct {
	Token      string    `json:"token"`
	LoggedIn   bool      `json:"logged_in"`
	CSRFSecret string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
