package auth

// RegisterInput for POST /auth/register
type RegisterInput struct {
	Body struct {
		Name       string `json:"name"       minLength:"1" maxLength:"100" required:"true" doc:"Full name"              example:"Maria Silva"`
		Email      string `json:"email"      format:"email"               required:"true" doc:"Email address"          example:"maria@example.com"`
		Password   string `json:"password"   minLength:"6" maxLength:"128" required:"true" doc:"Password"               example:"segredo123"`
		Profession string `json:"profession" minLength:"1" maxLength:"100" required:"true" doc:"Trade or profession"    example:"Eletricista"`
		WhatsApp   string `json:"whatsapp,omitempty" maxLength:"20"                        doc:"WhatsApp phone number"  example:"11999998888"`
	}
}

// LoginInput for POST /auth/login
type LoginInput struct {
	Body struct {
		Email    string `json:"email"    format:"email" required:"true" doc:"Email address" example:"maria@example.com"`
		Password string `json:"password" minLength:"1"  required:"true" doc:"Password"      example:"segredo123"`
	}
}

// LogoutInput for POST /auth/logout (no body needed)
type LogoutInput struct{}
