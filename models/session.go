package models

// Session is the at-most-one authenticated user of a running client. Token
// is present only when the session was established through the remote auth
// service; local-fallback logins carry no token. The client treats the token
// as an opaque string.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}
