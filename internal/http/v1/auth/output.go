package auth

// Session represents an authenticated session response.
type Session struct {
	UID          string `json:"uid"          doc:"User identifier"                  example:"user-123"`
	Email        string `json:"email"        doc:"Email address"                    example:"maria@example.com"`
	IDToken      string `json:"idToken"      doc:"Bearer token for API requests"`
	RefreshToken string `json:"refreshToken" doc:"Token used to refresh the session"`
	ExpiresIn    string `json:"expiresIn"    doc:"Token lifetime in seconds"        example:"3600"`
}

// RegisterOutput for POST /auth/register (201 Created)
type RegisterOutput struct {
	Body Session
}

// LoginOutput for POST /auth/login
type LoginOutput struct {
	Body Session
}
