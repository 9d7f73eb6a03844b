package profile

// ProfileCreateInput for POST /profile
type ProfileCreateInput struct {
	Body struct {
		Name       string `json:"name"       minLength:"1" maxLength:"100" required:"true" doc:"Full name"             example:"Maria Silva"`
		Email      string `json:"email"      format:"email"               required:"true" doc:"Email address"         example:"maria@example.com"`
		Profession string `json:"profession" minLength:"1" maxLength:"100" required:"true" doc:"Trade or profession"   example:"Eletricista"`
		WhatsApp   string `json:"whatsapp,omitempty" maxLength:"20"                        doc:"WhatsApp phone number" example:"11999998888"`
	}
}

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileUpdateInput for PATCH /profile
type ProfileUpdateInput struct {
	Body struct {
		Name       *string `json:"name,omitempty"       minLength:"1" maxLength:"100" doc:"Full name"             example:"Maria Silva"`
		Email      *string `json:"email,omitempty"      format:"email"               doc:"Email address"         example:"maria@example.com"`
		Profession *string `json:"profession,omitempty" minLength:"1" maxLength:"100" doc:"Trade or profession"   example:"Eletricista"`
		WhatsApp   *string `json:"whatsapp,omitempty"   maxLength:"20"               doc:"WhatsApp phone number" example:"11999998888"`
	}
}
