package model

// AdminCredential is the single administrator account, supplied via
// configuration at startup. PasswordHash is a bcrypt hash.
type AdminCredential struct {
	Username     string
	PasswordHash string
}
