// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer. Field validation with per-field messages happens in the
// usecase, so the DTOs carry plain json tags only.
package dto

// SignupReq is the request body for POST /auth/signup.
type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninReq is the request body for POST /auth/signin.
type SigninReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the public view of a user: the password hash never appears.
type Profile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
}

// SigninData is the signin response payload: the public profile plus the
// freshly minted session token.
type SigninData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
