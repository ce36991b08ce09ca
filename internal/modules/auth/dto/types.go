package dto

import "time"

type CredentialsInput struct {
	Email    string
	Password string
}

type SessionOutput struct {
	Identity      string
	Authenticated bool
}

type StatusOutput struct {
	Identity      string
	Authenticated bool
	TokenExpiry   *time.Time
}
