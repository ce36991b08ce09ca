package domain

// Session is the authenticated identity held by the client. Exactly one is
// active per client instance; it persists across restarts through the durable
// store and is destroyed on logout.
type Session struct {
	Token    string
	Identity string
}

// IsAuthenticated is derived from identity presence and never stored
// independently, so it cannot diverge from the session itself.
func (s Session) IsAuthenticated() bool {
	return s.Identity != ""
}

// TokenGrant is what the server returns on successful login or registration.
type TokenGrant struct {
	AccessToken string
	TokenType   string
}
